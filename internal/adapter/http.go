package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-movie-browser/internal/config"
	"github.com/MKhiriev/go-movie-browser/internal/logger"
	"github.com/MKhiriev/go-movie-browser/internal/utils"
	"github.com/MKhiriev/go-movie-browser/models"
	"github.com/go-resty/resty/v2"
)

type tmdbAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	apiKey   string
	language string

	logger *logger.Logger
}

// NewTMDBAdapter constructs an HTTP implementation of [CatalogAPI]. It
// normalises and validates the base URL from cfg.BaseURL and configures the
// underlying HTTP client with the resolved base URL and request timeout. The
// API key and language are attached as query parameters to every request.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewTMDBAdapter(cfg config.ClientTMDB, logger *logger.Logger) (CatalogAPI, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid tmdb base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &tmdbAdapter{client: client, ids: utils.NewUUIDGenerator(), apiKey: cfg.APIKey, language: cfg.Language, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// PopularMovies implements [CatalogAPI]. It GETs one page of
// GET /movie/popular and decodes the response into a [models.MediaPage].
// Returns an error if the request, response mapping, or JSON decoding fails.
func (t *tmdbAdapter) PopularMovies(ctx context.Context, page int) (models.MediaPage, error) {
	resp, err := t.request(ctx).
		SetQueryParam("page", fmt.Sprint(page)).
		Get("/movie/popular")
	if err != nil {
		return models.MediaPage{}, fmt.Errorf("popular movies request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MediaPage{}, err
	}

	var listing models.MediaPage
	if err = json.Unmarshal(resp.Body(), &listing); err != nil {
		return models.MediaPage{}, fmt.Errorf("decode popular movies response: %w", err)
	}

	return listing, nil
}

// PopularTVShows implements [CatalogAPI]. It GETs one page of
// GET /tv/popular and decodes the response into a [models.MediaPage].
// Returns an error if the request, response mapping, or JSON decoding fails.
func (t *tmdbAdapter) PopularTVShows(ctx context.Context, page int) (models.MediaPage, error) {
	resp, err := t.request(ctx).
		SetQueryParam("page", fmt.Sprint(page)).
		Get("/tv/popular")
	if err != nil {
		return models.MediaPage{}, fmt.Errorf("popular tv shows request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MediaPage{}, err
	}

	var listing models.MediaPage
	if err = json.Unmarshal(resp.Body(), &listing); err != nil {
		return models.MediaPage{}, fmt.Errorf("decode popular tv shows response: %w", err)
	}

	return listing, nil
}

// SearchMovies implements [CatalogAPI]. It GETs one page of
// GET /search/movie matching query. The query string is passed verbatim as
// the "query" parameter. Returns an error if the request, response mapping,
// or JSON decoding fails.
func (t *tmdbAdapter) SearchMovies(ctx context.Context, query string, page int) (models.MediaPage, error) {
	resp, err := t.request(ctx).
		SetQueryParam("query", query).
		SetQueryParam("page", fmt.Sprint(page)).
		Get("/search/movie")
	if err != nil {
		return models.MediaPage{}, fmt.Errorf("search movies request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MediaPage{}, err
	}

	var listing models.MediaPage
	if err = json.Unmarshal(resp.Body(), &listing); err != nil {
		return models.MediaPage{}, fmt.Errorf("decode search movies response: %w", err)
	}

	return listing, nil
}

// SearchTVShows implements [CatalogAPI]. It GETs one page of
// GET /search/tv matching query. The query string is passed verbatim as the
// "query" parameter. Returns an error if the request, response mapping, or
// JSON decoding fails.
func (t *tmdbAdapter) SearchTVShows(ctx context.Context, query string, page int) (models.MediaPage, error) {
	resp, err := t.request(ctx).
		SetQueryParam("query", query).
		SetQueryParam("page", fmt.Sprint(page)).
		Get("/search/tv")
	if err != nil {
		return models.MediaPage{}, fmt.Errorf("search tv shows request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MediaPage{}, err
	}

	var listing models.MediaPage
	if err = json.Unmarshal(resp.Body(), &listing); err != nil {
		return models.MediaPage{}, fmt.Errorf("decode search tv shows response: %w", err)
	}

	return listing, nil
}

// MovieDetails implements [CatalogAPI]. It GETs the full detail record from
// GET /movie/{id}. Returns [ErrNotFound] (wrapped) on HTTP 404, or another
// error if the request or JSON decoding fails.
func (t *tmdbAdapter) MovieDetails(ctx context.Context, id int64) (models.MediaDetails, error) {
	resp, err := t.request(ctx).Get(fmt.Sprintf("/movie/%d", id))
	if err != nil {
		return models.MediaDetails{}, fmt.Errorf("movie details request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MediaDetails{}, err
	}

	var details models.MediaDetails
	if err = json.Unmarshal(resp.Body(), &details); err != nil {
		return models.MediaDetails{}, fmt.Errorf("decode movie details response: %w", err)
	}

	return details, nil
}

// TVShowDetails implements [CatalogAPI]. It GETs the full detail record from
// GET /tv/{id}. Returns [ErrNotFound] (wrapped) on HTTP 404, or another
// error if the request or JSON decoding fails.
func (t *tmdbAdapter) TVShowDetails(ctx context.Context, id int64) (models.MediaDetails, error) {
	resp, err := t.request(ctx).Get(fmt.Sprintf("/tv/%d", id))
	if err != nil {
		return models.MediaDetails{}, fmt.Errorf("tv show details request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MediaDetails{}, err
	}

	var details models.MediaDetails
	if err = json.Unmarshal(resp.Body(), &details); err != nil {
		return models.MediaDetails{}, fmt.Errorf("decode tv show details response: %w", err)
	}

	return details, nil
}

// MovieVideos implements [CatalogAPI]. It GETs the videos attached to a
// movie from GET /movie/{id}/videos. Returns an error if the request,
// response mapping, or JSON decoding fails.
func (t *tmdbAdapter) MovieVideos(ctx context.Context, id int64) (models.VideoList, error) {
	resp, err := t.request(ctx).Get(fmt.Sprintf("/movie/%d/videos", id))
	if err != nil {
		return models.VideoList{}, fmt.Errorf("movie videos request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VideoList{}, err
	}

	var videos models.VideoList
	if err = json.Unmarshal(resp.Body(), &videos); err != nil {
		return models.VideoList{}, fmt.Errorf("decode movie videos response: %w", err)
	}

	return videos, nil
}

// TVShowVideos implements [CatalogAPI]. It GETs the videos attached to a TV
// show from GET /tv/{id}/videos. Returns an error if the request, response
// mapping, or JSON decoding fails.
func (t *tmdbAdapter) TVShowVideos(ctx context.Context, id int64) (models.VideoList, error) {
	resp, err := t.request(ctx).Get(fmt.Sprintf("/tv/%d/videos", id))
	if err != nil {
		return models.VideoList{}, fmt.Errorf("tv show videos request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VideoList{}, err
	}

	var videos models.VideoList
	if err = json.Unmarshal(resp.Body(), &videos); err != nil {
		return models.VideoList{}, fmt.Errorf("decode tv show videos response: %w", err)
	}

	return videos, nil
}

// request prepares a resty request bound to ctx. Every request carries a
// generated id so its debug line can be matched with the response on the
// wire.
func (t *tmdbAdapter) request(ctx context.Context) *resty.Request {
	requestID := t.ids.Generate()
	t.logger.Debug().Str("func", "tmdbAdapter.request").Str("requestID", requestID).Msg("outgoing TMDb request")

	req := t.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID).
		SetQueryParam("api_key", t.apiKey)
	if t.language != "" {
		req.SetQueryParam("language", t.language)
	}
	return req
}
