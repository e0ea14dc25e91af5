package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result, with earlier configs winning.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Node: Node{Address: "http://localhost:7777"}},
		&StructuredConfig{Node: Node{Address: "http://ignored:11101", RequestTimeout: 30 * time.Second}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:7777", cfg.Node.Address)
	assert.Equal(t, 30*time.Second, cfg.Node.RequestTimeout)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

// TestWithDefaults_FillsOnlyZeroFields verifies that defaults do not
// overwrite values that an earlier source already set.
func TestWithDefaults_FillsOnlyZeroFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Deploy: Deploy{ChainName: "casper", TTL: time.Hour},
	})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "casper", cfg.Deploy.ChainName)
	assert.Equal(t, time.Hour, cfg.Deploy.TTL, "explicit TTL survives defaults")
	assert.Equal(t, uint64(1), cfg.Deploy.GasPrice)
	assert.Equal(t, 60*time.Second, cfg.Node.RequestTimeout)
	assert.Equal(t, "casper-client.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 5*time.Second, cfg.Workers.PollInterval)
	assert.Equal(t, 5*time.Minute, cfg.Workers.PollTimeout)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPathIsNoop verifies that withJSON appends nothing when no
// earlier source named a JSON file.
func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.withJSON()
	assert.Empty(t, b.configs)
	assert.NoError(t, b.err)
}

// TestWithJSON_LoadsFileNamedByEarlierSource verifies that a JSONFilePath
// set by an earlier source causes the file to be parsed and appended.
func TestWithJSON_LoadsFileNamedByEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"node": map[string]any{"address": "http://node.example:7777", "request_timeout": "45s"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "http://node.example:7777", cfg.Node.Address)
	assert.Equal(t, 45*time.Second, cfg.Node.RequestTimeout)
}

// TestWithJSON_MissingFile verifies that a missing JSON file surfaces as a
// build error.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})

	cfg, err := b.withJSON().build()
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

// ── ClientConfig.validate ─────────────────────────────────────────────────────

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		Node:    ClientNode{RequestTimeout: time.Minute},
		Storage: ClientStorage{DB: ClientDB{DSN: "casper-client.db"}},
		Workers: ClientWorkers{PollInterval: 5 * time.Second, PollTimeout: 5 * time.Minute},
	}
}

// TestClientConfigValidate covers the validation sentinels for each
// configuration group.
func TestClientConfigValidate(t *testing.T) {
	require.NoError(t, validClientConfig().validate())

	cfg := validClientConfig()
	cfg.Node.RequestTimeout = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidNodeConfigs)

	cfg = validClientConfig()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = validClientConfig()
	cfg.Workers.PollInterval = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)

	cfg = validClientConfig()
	cfg.Workers.PollTimeout = -time.Second
	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
}
