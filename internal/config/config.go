// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vadim Karasev

package config

import (
	"time"
)

// EnvPrefix is applied to every environment variable lookup.
const EnvPrefix = "CASPER_"

// StructuredConfig is the top-level configuration container for the
// client. It aggregates all sub-configurations and is populated by
// merging environment variables, an optional JSON file, and defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to nested env tag lookups (caarlos0/env).
//   - env       — environment variable name for scalar fields, under the
//     global CASPER_ prefix.
type StructuredConfig struct {
	// Node holds the RPC endpoint settings of the Casper node.
	Node Node `envPrefix:"NODE_"`

	// Deploy holds defaults applied when constructing deploys.
	Deploy Deploy `envPrefix:"DEPLOY_"`

	// Storage holds the local submission-history database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds settings for the deploy poller.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged beneath the values
	// already loaded from the environment.
	// Env: CASPER_CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// Node holds the RPC endpoint settings of the Casper node.
type Node struct {
	// Address is the node's RPC address, e.g. "http://localhost:7777".
	// A bare host:port gets an http:// scheme. Env: CASPER_NODE_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout caps a single RPC round trip (e.g. "30s").
	// Env: CASPER_NODE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Verbose makes the adapter log full JSON-RPC envelopes at debug
	// level. Env: CASPER_NODE_VERBOSE
	Verbose bool `env:"VERBOSE"`

	// RPCID, when set, is used verbatim as the JSON-RPC request id
	// instead of a fresh UUID per request. Env: CASPER_NODE_RPC_ID
	RPCID string `env:"RPC_ID"`
}

// Deploy holds client-side defaults applied when constructing deploys.
type Deploy struct {
	// ChainName is the default network name, e.g. "casper-test".
	// Env: CASPER_DEPLOY_CHAIN_NAME
	ChainName string `env:"CHAIN_NAME"`

	// SecretKeyPath is the default signing key PEM file.
	// Env: CASPER_DEPLOY_SECRET_KEY_PATH
	SecretKeyPath string `env:"SECRET_KEY_PATH"`

	// TTL is the default deploy time-to-live (e.g. "30m").
	// Env: CASPER_DEPLOY_TTL
	TTL time.Duration `env:"TTL"`

	// GasPrice is the default gas price tolerance.
	// Env: CASPER_DEPLOY_GAS_PRICE
	GasPrice uint64 `env:"GAS_PRICE"`
}

// Storage holds the local submission-history database settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite history database.
type DB struct {
	// DSN is the SQLite path or connection string
	// (e.g. "casper-client.db"). Env: CASPER_STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds settings for the deploy poller used by --wait.
type Workers struct {
	// PollInterval is how often the poller re-queries info_get_deploy.
	// Env: CASPER_WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// PollTimeout bounds how long the poller waits for execution before
	// giving up. Env: CASPER_WORKERS_POLL_TIMEOUT
	PollTimeout time.Duration `env:"POLL_TIMEOUT"`
}

// GetStructuredConfig loads and merges the client configuration from all
// sources. Earlier sources win; later ones fill remaining gaps:
//  1. Environment variables
//  2. JSON file (path resolved from the environment)
//  3. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
