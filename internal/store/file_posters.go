package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-movie-browser/internal/config"
	"github.com/MKhiriev/go-movie-browser/internal/logger"
)

// posterCache is the filesystem implementation of [PosterFileCache]. Each
// image is stored as a single file in the cache directory, named after the
// final element of its TMDb image path ("/abc123.jpg" becomes "abc123.jpg").
// TMDb path elements are unique hashes, so the flat layout cannot collide.
type posterCache struct {
	dir    string
	logger *logger.Logger
}

// NewPosterCache creates the cache directory when missing and returns a
// [PosterFileCache] over it.
func NewPosterCache(cfg config.ClientFiles, log *logger.Logger) (PosterFileCache, error) {
	if err := os.MkdirAll(cfg.PosterCacheDir, 0o755); err != nil {
		log.Err(err).Str("func", "NewPosterCache").Msg("error creating poster cache dir")
		return nil, fmt.Errorf("create poster cache dir: %w", err)
	}

	return &posterCache{
		dir:    cfg.PosterCacheDir,
		logger: log,
	}, nil
}

// File maps a TMDb image path to the cache file it would be stored in.
// The file does not have to exist.
func (c *posterCache) File(imagePath string) (string, error) {
	name := filepath.Base(imagePath)
	if name == "." || name == string(filepath.Separator) || name == "/" {
		return "", fmt.Errorf("%w: %q", ErrInvalidImagePath, imagePath)
	}

	return filepath.Join(c.dir, name), nil
}

// Load returns the cached bytes for the image path, or [ErrPosterNotCached]
// when no entry exists.
func (c *posterCache) Load(ctx context.Context, imagePath string) ([]byte, error) {
	file, err := c.File(imagePath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPosterNotCached
		}
		c.logger.Err(err).Str("func", "posterCache.Load").Str("file", file).Msg("error reading cached poster")
		return nil, fmt.Errorf("read cached poster: %w", err)
	}

	return data, nil
}

// Save writes the image bytes under the cache key for imagePath, replacing
// any previous entry.
func (c *posterCache) Save(ctx context.Context, imagePath string, data []byte) error {
	file, err := c.File(imagePath)
	if err != nil {
		return err
	}

	if err := os.WriteFile(file, data, 0o600); err != nil {
		c.logger.Err(err).Str("func", "posterCache.Save").Str("file", file).Msg("error writing cached poster")
		return fmt.Errorf("write cached poster: %w", err)
	}

	return nil
}
