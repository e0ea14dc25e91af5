// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vadim Karasev

package config

// validate checks the final merged [StructuredConfig] before it is used.
//
// The node address is allowed to be empty here: commands that need a node
// require it via their own flags.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Node.RequestTimeout <= 0 {
		return ErrInvalidNodeConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.PollInterval <= 0 || cfg.Workers.PollTimeout <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
