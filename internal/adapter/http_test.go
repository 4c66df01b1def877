// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-movie-browser/internal/config"
	"github.com/MKhiriev/go-movie-browser/internal/logger"
	"github.com/MKhiriev/go-movie-browser/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCatalog создаёт tmdbAdapter, направленный на тестовый сервер
func newTestCatalog(t *testing.T, serverURL string) CatalogAPI {
	t.Helper()
	cfg := config.ClientTMDB{
		BaseURL:        serverURL,
		APIKey:         "testkey",
		Language:       "en-US",
		RequestTimeout: 5 * time.Second,
	}

	a, err := NewTMDBAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a
}

func newTestImages(t *testing.T) ImageAPI {
	t.Helper()
	return NewImageAdapter(config.ClientTMDB{ImageTimeout: 3 * time.Second}, logger.Nop())
}

// ── PopularMovies ────────────────────────────────────────────────────────────

func TestPopularMovies_Success(t *testing.T) {
	want := models.MediaPage{
		Page: 2,
		Results: []models.MediaItem{
			{ID: 693134, Title: "Dune: Part Two", ReleaseDate: "2024-02-27", VoteAverage: 8.3, PosterPath: "/poster.jpg"},
		},
		TotalPages:   500,
		TotalResults: 10000,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/movie/popular", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "testkey", q.Get("api_key"))
		assert.Equal(t, "en-US", q.Get("language"))
		assert.Equal(t, "2", q.Get("page"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestCatalog(t, srv.URL)
	got, err := a.PopularMovies(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, want.Page, got.Page)
	require.Len(t, got.Results, 1)
	assert.Equal(t, want.Results[0].ID, got.Results[0].ID)
	assert.Equal(t, want.Results[0].Title, got.Results[0].Title)
	assert.Equal(t, want.TotalPages, got.TotalPages)
}

func TestPopularMovies_InvalidAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid api key: you must be granted a valid key"))
	}))
	defer srv.Close()

	a := newTestCatalog(t, srv.URL)
	_, err := a.PopularMovies(context.Background(), 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAPIKey)
}

// ── PopularTVShows ───────────────────────────────────────────────────────────

func TestPopularTVShows_Success(t *testing.T) {
	want := models.MediaPage{
		Page: 1,
		Results: []models.MediaItem{
			{ID: 1399, Name: "Game of Thrones", FirstAirDate: "2011-04-17", VoteAverage: 8.5},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tv/popular", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestCatalog(t, srv.URL)
	got, err := a.PopularTVShows(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, got.Results, 1)
	assert.Equal(t, want.Results[0].Name, got.Results[0].Name)
	assert.Equal(t, want.Results[0].FirstAirDate, got.Results[0].FirstAirDate)
}

// ── SearchMovies ─────────────────────────────────────────────────────────────

func TestSearchMovies_Success(t *testing.T) {
	want := models.MediaPage{
		Page:    1,
		Results: []models.MediaItem{{ID: 438631, Title: "Dune", ReleaseDate: "2021-09-15"}},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "dune part two", q.Get("query"))
		assert.Equal(t, "1", q.Get("page"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestCatalog(t, srv.URL)
	got, err := a.SearchMovies(context.Background(), "dune part two", 1)

	require.NoError(t, err)
	require.Len(t, got.Results, 1)
	assert.Equal(t, want.Results[0].Title, got.Results[0].Title)
}

func TestSearchMovies_APIUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("the api is undergoing maintenance"))
	}))
	defer srv.Close()

	a := newTestCatalog(t, srv.URL)
	_, err := a.SearchMovies(context.Background(), "dune", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAPIUnavailable)
}

// ── SearchTVShows ────────────────────────────────────────────────────────────

func TestSearchTVShows_Success(t *testing.T) {
	want := models.MediaPage{
		Page:    1,
		Results: []models.MediaItem{{ID: 1396, Name: "Breaking Bad", FirstAirDate: "2008-01-20"}},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/tv", r.URL.Path)
		assert.Equal(t, "breaking bad", r.URL.Query().Get("query"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestCatalog(t, srv.URL)
	got, err := a.SearchTVShows(context.Background(), "breaking bad", 1)

	require.NoError(t, err)
	require.Len(t, got.Results, 1)
	assert.Equal(t, want.Results[0].Name, got.Results[0].Name)
}

// ── MovieDetails ─────────────────────────────────────────────────────────────

func TestMovieDetails_Success(t *testing.T) {
	want := models.MediaDetails{
		MediaItem: models.MediaItem{ID: 603, Title: "The Matrix", ReleaseDate: "1999-03-31", VoteAverage: 8.2},
		Tagline:   "Welcome to the Real World.",
		Genres:    []models.Genre{{ID: 28, Name: "Action"}, {ID: 878, Name: "Science Fiction"}},
		Runtime:   136,
		Status:    "Released",
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/movie/603", r.URL.Path)
		assert.Equal(t, "testkey", r.URL.Query().Get("api_key"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestCatalog(t, srv.URL)
	got, err := a.MovieDetails(context.Background(), 603)

	require.NoError(t, err)
	assert.Equal(t, want.Title, got.Title)
	assert.Equal(t, want.Tagline, got.Tagline)
	assert.Equal(t, want.Runtime, got.Runtime)
	require.Len(t, got.Genres, 2)
	assert.Equal(t, "Action", got.Genres[0].Name)
}

func TestMovieDetails_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("the resource you requested could not be found"))
	}))
	defer srv.Close()

	a := newTestCatalog(t, srv.URL)
	_, err := a.MovieDetails(context.Background(), 99999999)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── TVShowDetails ────────────────────────────────────────────────────────────

func TestTVShowDetails_Success(t *testing.T) {
	want := models.MediaDetails{
		MediaItem:        models.MediaItem{ID: 1399, Name: "Game of Thrones", FirstAirDate: "2011-04-17"},
		NumberOfSeasons:  8,
		NumberOfEpisodes: 73,
		Status:           "Ended",
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tv/1399", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestCatalog(t, srv.URL)
	got, err := a.TVShowDetails(context.Background(), 1399)

	require.NoError(t, err)
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.NumberOfSeasons, got.NumberOfSeasons)
	assert.Equal(t, want.Status, got.Status)
}

// ── MovieVideos ──────────────────────────────────────────────────────────────

func TestMovieVideos_Success(t *testing.T) {
	want := models.VideoList{
		ID: 603,
		Results: []models.Video{
			{ID: "5c9294240e0a267cd516835f", Key: "vKQi3bBA1y8", Name: "Official Trailer", Site: "YouTube", Type: "Trailer", Official: true},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/603/videos", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestCatalog(t, srv.URL)
	got, err := a.MovieVideos(context.Background(), 603)

	require.NoError(t, err)
	require.Len(t, got.Results, 1)
	assert.Equal(t, "vKQi3bBA1y8", got.Results[0].Key)
	assert.Equal(t, "YouTube", got.Results[0].Site)
}

func TestMovieVideos_APIUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal error"))
	}))
	defer srv.Close()

	a := newTestCatalog(t, srv.URL)
	_, err := a.MovieVideos(context.Background(), 603)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAPIUnavailable)
}

// ── TVShowVideos ─────────────────────────────────────────────────────────────

func TestTVShowVideos_Success(t *testing.T) {
	want := models.VideoList{
		ID:      1399,
		Results: []models.Video{{Key: "KPLWWIOCOOQ", Site: "YouTube", Type: "Teaser"}},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tv/1399/videos", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestCatalog(t, srv.URL)
	got, err := a.TVShowVideos(context.Background(), 1399)

	require.NoError(t, err)
	require.Len(t, got.Results, 1)
	assert.Equal(t, "KPLWWIOCOOQ", got.Results[0].Key)
}

// ── FetchImage ───────────────────────────────────────────────────────────────

func TestFetchImage_Success(t *testing.T) {
	want := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/w500/poster.jpg", r.URL.Path)

		w.Header().Set("Content-Type", "image/jpeg")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(want)
	}))
	defer srv.Close()

	a := newTestImages(t)
	got, err := a.FetchImage(context.Background(), srv.URL+"/w500/poster.jpg")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFetchImage_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("file not found"))
	}))
	defer srv.Close()

	a := newTestImages(t)
	_, err := a.FetchImage(context.Background(), srv.URL+"/w500/missing.jpg")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── NewTMDBAdapter ───────────────────────────────────────────────────────────

func TestNewTMDBAdapter_EmptyBaseURL(t *testing.T) {
	_, err := NewTMDBAdapter(config.ClientTMDB{BaseURL: ""}, logger.Nop())
	require.Error(t, err)
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid https", "https://api.themoviedb.org/3", "https://api.themoviedb.org/3", false},
		{"no scheme", "api.themoviedb.org/3", "https://api.themoviedb.org/3", false},
		{"trailing slash", "https://api.themoviedb.org/3/", "https://api.themoviedb.org/3", false},
		{"empty", "", "", true},
		{"no host", "https://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
