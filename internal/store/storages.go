package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-movie-browser/internal/config"
	"github.com/MKhiriev/go-movie-browser/internal/logger"
)

// ClientStorages groups all client-side storage backends into a single value
// that can be passed around the service layer: the SQLite user repository
// and the poster file cache.
type ClientStorages struct {
	// UserRepository is the SQLite-backed repository holding local
	// sign-in credentials.
	UserRepository UserRepository

	// PosterCache stores downloaded poster bytes between runs.
	PosterCache PosterFileCache
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Builds an SQLite handle for the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.EnsureSchema].
//  3. Creates the poster cache directory when missing.
//
// Returns an error if the database cannot be reached, migration fails, or
// the cache directory cannot be created.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewSQLiteStore(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	posters, err := NewPosterCache(cfg.Files, logger)
	if err != nil {
		return nil, fmt.Errorf("poster cache error: %w", err)
	}

	return &ClientStorages{
		UserRepository: NewUserRepository(db, logger),
		PosterCache:    posters,
	}, nil
}
