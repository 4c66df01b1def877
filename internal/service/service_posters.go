package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-movie-browser/internal/adapter"
	"github.com/MKhiriev/go-movie-browser/internal/config"
	"github.com/MKhiriev/go-movie-browser/internal/logger"
	"github.com/MKhiriev/go-movie-browser/internal/store"
	"github.com/MKhiriev/go-movie-browser/models"
)

// posterService is the concrete implementation of PosterService. It reads
// through the poster file cache: a hit is served from disk, a miss is
// downloaded from the image CDN and written back to the cache.
type posterService struct {
	cache  store.PosterFileCache
	images adapter.ImageAPI

	// imageBaseURL and posterSize assemble the CDN URL for an image path.
	imageBaseURL string
	posterSize   string

	logger *logger.Logger
}

// NewPosterService constructs a PosterService over the given file cache and
// image API. The CDN location and the poster size come from cfg.
func NewPosterService(cache store.PosterFileCache, images adapter.ImageAPI, cfg config.ClientTMDB, logger *logger.Logger) PosterService {
	return &posterService{
		cache:        cache,
		images:       images,
		imageBaseURL: cfg.ImageBaseURL,
		posterSize:   cfg.PosterSize,
		logger:       logger,
	}
}

// Poster implements PosterService.
//
// A failed cache write is logged and swallowed: the caller still receives
// the downloaded bytes, only the next request downloads again.
func (p *posterService) Poster(ctx context.Context, imagePath string) ([]byte, error) {
	log := logger.FromContext(ctx)

	if imagePath == "" {
		return nil, fmt.Errorf("%w: empty image path", ErrInvalidDataProvided)
	}

	data, err := p.cache.Load(ctx, imagePath)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, store.ErrPosterNotCached) {
		// A broken cache entry must not block rendering, fall through to the
		// network.
		log.Err(err).Str("func", "posterService.Poster").Str("path", imagePath).Msg("poster cache read failed")
	}

	url := models.ImageURL(p.imageBaseURL, p.posterSize, imagePath)
	if url == "" {
		return nil, fmt.Errorf("%w: no image url for path %q", ErrInvalidDataProvided, imagePath)
	}

	data, err = p.images.FetchImage(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("downloading poster failed: %w", err)
	}

	if err = p.cache.Save(ctx, imagePath, data); err != nil {
		log.Err(err).Str("func", "posterService.Poster").Str("path", imagePath).Msg("poster cache write failed")
	}

	return data, nil
}

// CachedFile implements PosterService. It warms the cache through Poster and
// resolves the cache file path. The extra Load confirms the cache write
// landed, so the returned path always points at an existing file.
func (p *posterService) CachedFile(ctx context.Context, imagePath string) (string, error) {
	if _, err := p.Poster(ctx, imagePath); err != nil {
		return "", err
	}
	if _, err := p.cache.Load(ctx, imagePath); err != nil {
		return "", fmt.Errorf("poster not in cache: %w", err)
	}

	return p.cache.File(imagePath)
}
