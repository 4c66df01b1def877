package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidTMDBConfigs indicates invalid TMDb API settings
	// (for example, missing base URL or zero request timeout).
	ErrInvalidTMDBConfigs = errors.New("invalid tmdb configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a non-positive prefetch worker count).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
