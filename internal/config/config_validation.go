// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; the real checks live on the client view,
// which is what the application actually runs with.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	// an in-memory SQLite database would lose the users table between
	// per-operation opens, so only file DSNs are accepted
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Files.PosterCacheDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.TMDB.BaseURL == "" || cfg.TMDB.ImageBaseURL == "" {
		return ErrInvalidTMDBConfigs
	}

	if cfg.TMDB.RequestTimeout == 0 || cfg.TMDB.ImageTimeout == 0 {
		return ErrInvalidTMDBConfigs
	}

	if cfg.Workers.PrefetchWorkers < 1 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
