// Package service contains the application logic of the movie browser: local
// sign-in, catalog browsing backed by TMDb and the poster cache with its
// background prefetching pool.
package service

import (
	"context"

	"github.com/MKhiriev/go-movie-browser/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// AuthService отвечает за локальный вход в приложение.
//
// Схема работы:
//  1. Bootstrap(ctx) — при старте приложения создаётся демо-аккаунт;
//  2. Verify(ctx, username, password) — проверка пары логин/пароль.
type AuthService interface {
	// Bootstrap seeds the demonstration account if it is not present yet.
	// Idempotent: an existing record is never overwritten.
	Bootstrap(ctx context.Context) error

	// Verify reports whether the username/password pair matches the stored
	// credential. An unknown username and a wrong password are both
	// (false, nil); only a storage failure produces a non-nil error.
	Verify(ctx context.Context, username, password string) (bool, error)
}

// CatalogService exposes the browsable TMDb catalog for one media type at a
// time. Pages are TMDb pages (20 items each), page numbers below 1 are
// treated as 1.
type CatalogService interface {
	// Popular returns the given page of the popularity chart.
	Popular(ctx context.Context, mediaType models.MediaType, page int) (models.MediaPage, error)
	// Search returns the given page of matches for query. An empty query
	// (after trimming) is rejected with ErrInvalidDataProvided.
	Search(ctx context.Context, mediaType models.MediaType, query string, page int) (models.MediaPage, error)
	// Details returns the full record for one title.
	Details(ctx context.Context, mediaType models.MediaType, id int64) (models.MediaDetails, error)
	// Trailer returns the best video to offer for one title and whether any
	// video is available at all.
	Trailer(ctx context.Context, mediaType models.MediaType, id int64) (models.Video, bool, error)
}

// PosterService serves poster images, reading from the local file cache
// first and downloading through the image API on a miss.
type PosterService interface {
	// Poster returns the image bytes for the TMDb image path.
	Poster(ctx context.Context, imagePath string) ([]byte, error)
	// CachedFile makes sure the poster is cached and returns the path of the
	// cache file holding it.
	CachedFile(ctx context.Context, imagePath string) (string, error)
}

// PosterPrefetcher warms the poster cache in the background so the detail
// screen opens without a download pause. Prefetching is best effort: a full
// queue drops items and failures are only logged.
type PosterPrefetcher interface {
	// Start launches the worker pool. Calling Start while a pool is running
	// stops the previous pool first.
	Start(ctx context.Context)
	// Enqueue offers the poster of every item to the pool without blocking.
	Enqueue(items []models.MediaItem)
	// Stop cancels the pool and waits for the workers to exit. Safe to call
	// when no pool is running.
	Stop()
}
