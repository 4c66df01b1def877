package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-movie-browser/internal/config"
	"github.com/MKhiriev/go-movie-browser/internal/logger"
	"github.com/MKhiriev/go-movie-browser/internal/utils"
)

type httpImageAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewImageAdapter constructs an HTTP implementation of [ImageAPI]. The image
// CDN serves static files and is expected to answer fast, so the client uses
// the dedicated cfg.ImageTimeout instead of the catalog request timeout.
// FetchImage takes absolute URLs, so no base URL is configured here.
func NewImageAdapter(cfg config.ClientTMDB, logger *logger.Logger) ImageAPI {
	client := utils.NewHTTPClient()
	client.SetTimeout(cfg.ImageTimeout)

	return &httpImageAdapter{client: client, logger: logger}
}

// FetchImage implements [ImageAPI]. It GETs the image at the given absolute
// URL and returns the raw bytes of the response body. Returns [ErrNotFound]
// (wrapped) on HTTP 404, or another error if the request fails.
func (h *httpImageAdapter) FetchImage(ctx context.Context, url string) ([]byte, error) {
	h.logger.Debug().Str("func", "httpImageAdapter.FetchImage").Str("url", url).Msg("downloading image")

	resp, err := h.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch image request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}
