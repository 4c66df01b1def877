package config

import (
	"fmt"
	"time"
)

// ClientTMDB holds the TMDb API settings used by the client transport layer.
type ClientTMDB struct {
	// APIKey is the TMDb v3 API key.
	APIKey string
	// BaseURL is the root of the TMDb REST API.
	BaseURL string
	// ImageBaseURL is the root of the TMDb image CDN.
	ImageBaseURL string
	// Language is the language tag sent with every catalog request.
	Language string
	// RequestTimeout is the timeout for outbound catalog requests.
	RequestTimeout time.Duration
	// ImageTimeout is the timeout for poster and backdrop downloads.
	ImageTimeout time.Duration
	// PosterSize is the size segment for poster URLs.
	PosterSize string
	// BackdropSize is the size segment for backdrop URLs.
	BackdropSize string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used for the local user database.
	DSN string
}

// ClientFiles contains poster cache settings for the client.
type ClientFiles struct {
	// PosterCacheDir is the directory holding cached poster files.
	PosterCacheDir string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// Files holds poster cache settings.
	Files ClientFiles
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// PrefetchWorkers is the number of poster prefetch goroutines.
	PrefetchWorkers int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// TMDB contains the TMDb API settings.
	TMDB ClientTMDB
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		TMDB: ClientTMDB{
			APIKey:         cfg.TMDB.APIKey,
			BaseURL:        cfg.TMDB.BaseURL,
			ImageBaseURL:   cfg.TMDB.ImageBaseURL,
			Language:       cfg.TMDB.Language,
			RequestTimeout: cfg.TMDB.RequestTimeout,
			ImageTimeout:   cfg.TMDB.ImageTimeout,
			PosterSize:     cfg.TMDB.PosterSize,
			BackdropSize:   cfg.TMDB.BackdropSize,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			Files: ClientFiles{
				PosterCacheDir: cfg.Storage.Files.PosterCacheDir,
			},
		},
		Workers: ClientWorkers{PrefetchWorkers: cfg.Workers.PrefetchWorkers},
	}

	return clientCfg, clientCfg.validate()
}
