// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-movie-browser application. It aggregates all sub-configurations and is
// populated by merging values from a .env file, environment variables,
// command-line flags, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// TMDB holds settings for The Movie Database API: credentials, base
	// URLs, timeouts, and preferred image sizes.
	TMDB TMDB `envPrefix:"TMDB_"`

	// Storage holds configuration for all persistence backends, including
	// the local user database and the poster file cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged with the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// TMDB holds everything needed to talk to The Movie Database API and its
// image CDN.
type TMDB struct {
	// APIKey is the TMDb v3 API key sent as the api_key query parameter on
	// every catalog request. Must be kept confidential.
	// Env: TMDB_API_KEY
	APIKey string `env:"API_KEY"`

	// BaseURL is the root of the TMDb REST API
	// (e.g. "https://api.themoviedb.org/3").
	// Env: TMDB_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// ImageBaseURL is the root of the TMDb image CDN
	// (e.g. "https://image.tmdb.org/t/p").
	// Env: TMDB_IMAGE_BASE_URL
	ImageBaseURL string `env:"IMAGE_BASE_URL"`

	// Language is the ISO 639-1 language tag sent as the language query
	// parameter (e.g. "en-US").
	// Env: TMDB_LANGUAGE
	Language string `env:"LANGUAGE"`

	// RequestTimeout is the maximum duration allowed for a single catalog
	// API request (e.g. "5s").
	// Env: TMDB_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ImageTimeout is the maximum duration allowed for a single poster or
	// backdrop download (e.g. "3s").
	// Env: TMDB_IMAGE_TIMEOUT
	ImageTimeout time.Duration `env:"IMAGE_TIMEOUT"`

	// PosterSize is the TMDb size segment used when building poster URLs
	// (e.g. "w500").
	// Env: TMDB_POSTER_SIZE
	PosterSize string `env:"POSTER_SIZE"`

	// BackdropSize is the TMDb size segment used when building backdrop
	// URLs (e.g. "w1280").
	// Env: TMDB_BACKDROP_SIZE
	BackdropSize string `env:"BACKDROP_SIZE"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the local user database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the file-system settings for the poster cache.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the local SQLite user database.
type DB struct {
	// DSN is the SQLite Data Source Name, normally a plain file path
	// (e.g. "movies.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for the poster cache.
type Files struct {
	// PosterCacheDir is the directory where downloaded posters and
	// backdrops are cached between runs.
	// Env: STORAGE_FILES_POSTER_CACHE_DIR
	PosterCacheDir string `env:"POSTER_CACHE_DIR"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// PrefetchWorkers is the number of goroutines warming the poster cache
	// while the user browses.
	// Env: WORKERS_PREFETCH_WORKERS
	PrefetchWorkers int `env:"PREFETCH_WORKERS"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables (with an optional .env file loaded first)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults, filling whatever is still unset
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotenv().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
