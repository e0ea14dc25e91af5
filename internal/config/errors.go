package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidNodeConfigs indicates invalid node endpoint settings
	// (for example, zero request timeout).
	ErrInvalidNodeConfigs = errors.New("invalid node configuration")
	// ErrInvalidStorageConfigs indicates invalid history storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid poller settings
	// (for example, zero poll interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
