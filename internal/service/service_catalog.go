package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-movie-browser/internal/adapter"
	"github.com/MKhiriev/go-movie-browser/internal/logger"
	"github.com/MKhiriev/go-movie-browser/models"
)

// catalogService is the concrete implementation of CatalogService. It routes
// every call to the movie or the TV endpoint of the catalog API depending on
// the requested media type, keeping the transport errors intact so that
// callers can match them with errors.Is.
type catalogService struct {
	catalog adapter.CatalogAPI
	logger  *logger.Logger
}

// NewCatalogService constructs a CatalogService on top of the given catalog
// API.
func NewCatalogService(catalog adapter.CatalogAPI, logger *logger.Logger) CatalogService {
	return &catalogService{catalog: catalog, logger: logger}
}

// Popular implements CatalogService.
func (c *catalogService) Popular(ctx context.Context, mediaType models.MediaType, page int) (models.MediaPage, error) {
	if page < 1 {
		page = 1
	}

	switch mediaType {
	case models.Movie:
		return c.catalog.PopularMovies(ctx, page)
	case models.TVShow:
		return c.catalog.PopularTVShows(ctx, page)
	default:
		return models.MediaPage{}, fmt.Errorf("%w: %q", ErrUnknownMediaType, mediaType)
	}
}

// Search implements CatalogService. The query is matched as typed, only an
// all-whitespace query is rejected.
func (c *catalogService) Search(ctx context.Context, mediaType models.MediaType, query string, page int) (models.MediaPage, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(query) == "" {
		log.Debug().Str("func", "catalogService.Search").Msg("empty search query")
		return models.MediaPage{}, fmt.Errorf("%w: empty search query", ErrInvalidDataProvided)
	}
	if page < 1 {
		page = 1
	}

	switch mediaType {
	case models.Movie:
		return c.catalog.SearchMovies(ctx, query, page)
	case models.TVShow:
		return c.catalog.SearchTVShows(ctx, query, page)
	default:
		return models.MediaPage{}, fmt.Errorf("%w: %q", ErrUnknownMediaType, mediaType)
	}
}

// Details implements CatalogService.
func (c *catalogService) Details(ctx context.Context, mediaType models.MediaType, id int64) (models.MediaDetails, error) {
	switch mediaType {
	case models.Movie:
		return c.catalog.MovieDetails(ctx, id)
	case models.TVShow:
		return c.catalog.TVShowDetails(ctx, id)
	default:
		return models.MediaDetails{}, fmt.Errorf("%w: %q", ErrUnknownMediaType, mediaType)
	}
}

// Trailer implements CatalogService. It loads the video list of the title
// and picks the most useful entry. The boolean is false when the title has
// no videos at all.
func (c *catalogService) Trailer(ctx context.Context, mediaType models.MediaType, id int64) (models.Video, bool, error) {
	var (
		videos models.VideoList
		err    error
	)

	switch mediaType {
	case models.Movie:
		videos, err = c.catalog.MovieVideos(ctx, id)
	case models.TVShow:
		videos, err = c.catalog.TVShowVideos(ctx, id)
	default:
		return models.Video{}, false, fmt.Errorf("%w: %q", ErrUnknownMediaType, mediaType)
	}
	if err != nil {
		return models.Video{}, false, fmt.Errorf("loading videos failed: %w", err)
	}

	trailer, ok := pickTrailer(videos.Results)
	return trailer, ok, nil
}

// pickTrailer prefers the first YouTube hosted Trailer or Teaser. When no
// video qualifies the first video of the list is offered instead, so the
// caller still gets something to open.
func pickTrailer(videos []models.Video) (models.Video, bool) {
	if len(videos) == 0 {
		return models.Video{}, false
	}

	for _, video := range videos {
		if video.Site == "YouTube" && (video.Type == "Trailer" || video.Type == "Teaser") {
			return video, true
		}
	}

	return videos[0], true
}
