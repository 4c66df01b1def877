// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to the
// TMDb HTTP API.
//
// The primary abstraction is [CatalogAPI], which covers the metadata
// endpoints (popular listings, search, detail records, videos) and decouples
// the service layer from the underlying protocol. [ImageAPI] covers the
// separate image CDN, which has its own host and a much shorter timeout.
// Both ship a resty-based HTTP implementation ([NewTMDBAdapter],
// [NewImageAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrInvalidAPIKey] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-movie-browser/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/catalog_api_mock.go -package=mock

// CatalogAPI defines transport-agnostic access to the TMDb catalog.
// Implementations are responsible for serialisation, API key handling, and
// mapping transport-level errors to the sentinel values defined in this
// package.
type CatalogAPI interface {
	// PopularMovies fetches one page of the popular movies listing.
	// page is 1-based. Returns an error if the request fails or the server
	// responds with a non-2xx status.
	PopularMovies(ctx context.Context, page int) (models.MediaPage, error)

	// PopularTVShows fetches one page of the popular TV shows listing.
	// page is 1-based. Returns an error if the request fails or the server
	// responds with a non-2xx status.
	PopularTVShows(ctx context.Context, page int) (models.MediaPage, error)

	// SearchMovies fetches one page of movies matching query. The query is
	// sent verbatim; validation of empty input is the caller's concern.
	SearchMovies(ctx context.Context, query string, page int) (models.MediaPage, error)

	// SearchTVShows fetches one page of TV shows matching query. The query
	// is sent verbatim; validation of empty input is the caller's concern.
	SearchTVShows(ctx context.Context, query string, page int) (models.MediaPage, error)

	// MovieDetails fetches the full detail record of one movie. Returns
	// [ErrNotFound] (wrapped) if no movie with the given id exists.
	MovieDetails(ctx context.Context, id int64) (models.MediaDetails, error)

	// TVShowDetails fetches the full detail record of one TV show. Returns
	// [ErrNotFound] (wrapped) if no show with the given id exists.
	TVShowDetails(ctx context.Context, id int64) (models.MediaDetails, error)

	// MovieVideos fetches the promotional videos attached to a movie.
	// The list may be empty; that is not an error.
	MovieVideos(ctx context.Context, id int64) (models.VideoList, error)

	// TVShowVideos fetches the promotional videos attached to a TV show.
	// The list may be empty; that is not an error.
	TVShowVideos(ctx context.Context, id int64) (models.VideoList, error)
}

// ImageAPI defines access to the TMDb image CDN. Implementations fetch raw
// image bytes by absolute URL; building the URL from base, size and path is
// the caller's concern (see [models.ImageURL]).
type ImageAPI interface {
	// FetchImage downloads a single image and returns its raw bytes.
	// Returns [ErrNotFound] (wrapped) if the CDN has no image at the URL.
	FetchImage(ctx context.Context, url string) ([]byte, error)
}
