// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-movie-browser/internal/adapter"
	"github.com/MKhiriev/go-movie-browser/internal/service"
)

func humanizeCatalogError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrInvalidAPIKey):
		return "TMDb rejected the API key. Check TMDB_API_KEY"
	case errors.Is(err, adapter.ErrNotFound):
		return "Title not found on TMDb"
	case errors.Is(err, adapter.ErrAPIUnavailable):
		return "TMDb is temporarily unavailable, try again later"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Nothing to look up, type a query first"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or TMDb is unreachable"
	}

	return err.Error()
}
