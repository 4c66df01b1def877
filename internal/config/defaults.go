// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default configuration values. The TMDb endpoints and image sizes follow
// the published v3 API; timeouts match what the UI can tolerate before a
// screen feels stuck.
const (
	DefaultBaseURL        = "https://api.themoviedb.org/3"
	DefaultImageBaseURL   = "https://image.tmdb.org/t/p"
	DefaultLanguage       = "en-US"
	DefaultRequestTimeout = 5 * time.Second
	DefaultImageTimeout   = 3 * time.Second
	DefaultPosterSize     = "w500"
	DefaultBackdropSize   = "w1280"
	DefaultDatabaseDSN    = "movies.db"
	DefaultPosterCacheDir = "posters"
	DefaultPrefetchCount  = 3
)

// defaultConfig returns the built-in configuration. It is merged in last,
// so it only fills fields no other source has set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		TMDB: TMDB{
			BaseURL:        DefaultBaseURL,
			ImageBaseURL:   DefaultImageBaseURL,
			Language:       DefaultLanguage,
			RequestTimeout: DefaultRequestTimeout,
			ImageTimeout:   DefaultImageTimeout,
			PosterSize:     DefaultPosterSize,
			BackdropSize:   DefaultBackdropSize,
		},
		Storage: Storage{
			DB: DB{
				DSN: DefaultDatabaseDSN,
			},
			Files: Files{
				PosterCacheDir: DefaultPosterCacheDir,
			},
		},
		Workers: Workers{
			PrefetchWorkers: DefaultPrefetchCount,
		},
	}
}
