package models

import (
	"fmt"
	"strings"
)

// MediaType identifies which TMDb catalog an item belongs to.
// The value doubles as the path segment of catalog endpoints
// ("movie/popular", "tv/popular" and so on).
type MediaType string

const (
	// Movie is the feature film catalog.
	Movie MediaType = "movie"

	// TVShow is the television series catalog.
	TVShow MediaType = "tv"
)

// MediaItem is a single listing entry as returned by the popular and search
// endpoints. Movie and TV payloads differ in their title and date field
// names, so both variants are present and the display helpers pick whichever
// is populated.
type MediaItem struct {
	// ID is the TMDb identifier, unique within one media type.
	ID int64 `json:"id"`

	// Title is the display title of a movie. Empty for TV shows.
	Title string `json:"title"`

	// Name is the display name of a TV show. Empty for movies.
	Name string `json:"name"`

	// ReleaseDate is the movie release date in YYYY-MM-DD form.
	ReleaseDate string `json:"release_date"`

	// FirstAirDate is the TV show premiere date in YYYY-MM-DD form.
	FirstAirDate string `json:"first_air_date"`

	// VoteAverage is the community rating on a 0..10 scale.
	VoteAverage float64 `json:"vote_average"`

	// Overview is the plot summary.
	Overview string `json:"overview"`

	// PosterPath is the TMDb image path of the poster (starts with "/"),
	// or empty when no poster exists.
	PosterPath string `json:"poster_path"`

	// BackdropPath is the TMDb image path of the wide backdrop image,
	// or empty when none exists.
	BackdropPath string `json:"backdrop_path"`
}

// DisplayTitle returns the title for movies or the name for TV shows.
func (m MediaItem) DisplayTitle() string {
	if m.Title != "" {
		return m.Title
	}
	if m.Name != "" {
		return m.Name
	}

	return "Unknown Title"
}

// Year returns the four-digit release year, or "N/A" when no date is known.
func (m MediaItem) Year() string {
	date := m.ReleaseDate
	if date == "" {
		date = m.FirstAirDate
	}
	if len(date) < 4 {
		return "N/A"
	}

	return date[:4]
}

// RatingLabel formats the community rating with one decimal, e.g. "8.3".
func (m MediaItem) RatingLabel() string {
	return fmt.Sprintf("%.1f", m.VoteAverage)
}

// MediaPage is one page of listing results.
type MediaPage struct {
	// Page is the 1-based page number of this result set.
	Page int `json:"page"`

	// Results holds the listing entries of this page.
	Results []MediaItem `json:"results"`

	// TotalPages is the number of pages available for the request.
	TotalPages int `json:"total_pages"`

	// TotalResults is the number of entries across all pages.
	TotalResults int `json:"total_results"`
}

// ImageURL builds the full URL of a TMDb image from the configured image
// base, a size token (e.g. "w500", "original") and the item's image path.
// Returns "" when the path or base is empty, so callers can treat a missing
// image as "nothing to fetch" rather than an error.
func ImageURL(baseURL, size, path string) string {
	if baseURL == "" || path == "" {
		return ""
	}

	return strings.TrimRight(baseURL, "/") + "/" + size + path
}
