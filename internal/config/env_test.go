// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vadim Karasev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CASPER_CONFIG": "/path/to/config.json",

		"CASPER_NODE_ADDRESS":         "http://localhost:7777",
		"CASPER_NODE_REQUEST_TIMEOUT": "30s",
		"CASPER_NODE_VERBOSE":         "true",
		"CASPER_NODE_RPC_ID":          "casper-client-1",

		"CASPER_DEPLOY_CHAIN_NAME":      "casper-test",
		"CASPER_DEPLOY_SECRET_KEY_PATH": "/keys/secret_key.pem",
		"CASPER_DEPLOY_TTL":             "1h",
		"CASPER_DEPLOY_GAS_PRICE":       "2",

		// Storage has a nested prefix: STORAGE_ + DB_
		"CASPER_STORAGE_DB_DATABASE_URI": "/var/lib/casper/history.db",

		"CASPER_WORKERS_POLL_INTERVAL": "2s",
		"CASPER_WORKERS_POLL_TIMEOUT":  "10m",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "http://localhost:7777", cfg.Node.Address)
	assert.Equal(t, 30*time.Second, cfg.Node.RequestTimeout)
	assert.True(t, cfg.Node.Verbose)
	assert.Equal(t, "casper-client-1", cfg.Node.RPCID)

	assert.Equal(t, "casper-test", cfg.Deploy.ChainName)
	assert.Equal(t, "/keys/secret_key.pem", cfg.Deploy.SecretKeyPath)
	assert.Equal(t, time.Hour, cfg.Deploy.TTL)
	assert.Equal(t, uint64(2), cfg.Deploy.GasPrice)

	assert.Equal(t, "/var/lib/casper/history.db", cfg.Storage.DB.DSN)

	assert.Equal(t, 2*time.Second, cfg.Workers.PollInterval)
	assert.Equal(t, 10*time.Minute, cfg.Workers.PollTimeout)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CASPER_NODE_ADDRESS":      "http://localhost:7777",
		"CASPER_DEPLOY_CHAIN_NAME": "casper-test",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:7777", cfg.Node.Address)
	assert.Zero(t, cfg.Node.RequestTimeout)
	assert.False(t, cfg.Node.Verbose)

	assert.Equal(t, "casper-test", cfg.Deploy.ChainName)
	assert.Empty(t, cfg.Deploy.SecretKeyPath)
	assert.Zero(t, cfg.Deploy.GasPrice)

	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Workers.PollInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CASPER_NODE_REQUEST_TIMEOUT": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	assert.Error(t, err)
}

func TestParseEnv_InvalidGasPrice(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CASPER_DEPLOY_GAS_PRICE": "-1",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	assert.Error(t, err)
}

// setEnvVars resets all config env vars, then applies the given ones for
// the duration of the test.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CASPER_CONFIG",
		"CASPER_NODE_ADDRESS",
		"CASPER_NODE_REQUEST_TIMEOUT",
		"CASPER_NODE_VERBOSE",
		"CASPER_NODE_RPC_ID",
		"CASPER_DEPLOY_CHAIN_NAME",
		"CASPER_DEPLOY_SECRET_KEY_PATH",
		"CASPER_DEPLOY_TTL",
		"CASPER_DEPLOY_GAS_PRICE",
		"CASPER_STORAGE_DB_DATABASE_URI",
		"CASPER_WORKERS_POLL_INTERVAL",
		"CASPER_WORKERS_POLL_TIMEOUT",
	}
	for _, k := range keys {
		require.NoError(t, os.Unsetenv(k))
	}
}
