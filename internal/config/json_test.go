package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── parseJSON ─────────────────────────────────────────────────────────────────

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"node": map[string]any{
			"address":         "http://node.example:7777",
			"request_timeout": "45s",
			"verbose":         true,
		},
		"deploy": map[string]any{
			"chain_name":      "casper",
			"secret_key_path": "/keys/secret_key.pem",
			"ttl":             "1h",
			"gas_price":       3,
		},
		"storage": map[string]any{
			"db": map[string]any{"dsn": "/tmp/history.db"},
		},
		"workers": map[string]any{
			"poll_interval": "2s",
			"poll_timeout":  "10m",
		},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "http://node.example:7777", cfg.Node.Address)
	assert.Equal(t, 45*time.Second, cfg.Node.RequestTimeout)
	assert.True(t, cfg.Node.Verbose)

	assert.Equal(t, "casper", cfg.Deploy.ChainName)
	assert.Equal(t, "/keys/secret_key.pem", cfg.Deploy.SecretKeyPath)
	assert.Equal(t, time.Hour, cfg.Deploy.TTL)
	assert.Equal(t, uint64(3), cfg.Deploy.GasPrice)

	assert.Equal(t, "/tmp/history.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Second, cfg.Workers.PollInterval)
	assert.Equal(t, 10*time.Minute, cfg.Workers.PollTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := parseJSON(path)
	assert.Error(t, err)
}

// ── Duration ──────────────────────────────────────────────────────────────────

// TestDuration_UnmarshalJSON covers both supported JSON forms: duration
// strings and raw nanosecond numbers.
func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "duration string", input: `"30s"`, expected: 30 * time.Second},
		{name: "compound string", input: `"1h30m"`, expected: 90 * time.Minute},
		{name: "nanosecond number", input: `5000000000`, expected: 5 * time.Second},
		{name: "garbage string", input: `"thirty seconds"`, wantErr: true},
		{name: "wrong type", input: `["30s"]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))
}
