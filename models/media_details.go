// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// Genre is a single genre tag attached to a detail record.
type Genre struct {
	// ID is the TMDb genre identifier.
	ID int64 `json:"id"`

	// Name is the human-readable genre label.
	Name string `json:"name"`
}

// MediaDetails is the full detail record of one movie or TV show.
// It extends the listing fields with data only present on the per-item
// endpoints. Movie-only and TV-only fields are zero for the other type.
type MediaDetails struct {
	MediaItem

	// Tagline is the marketing one-liner, often empty.
	Tagline string `json:"tagline"`

	// Genres lists the genre tags of the item.
	Genres []Genre `json:"genres"`

	// Runtime is the movie length in minutes. Zero for TV shows.
	Runtime int `json:"runtime"`

	// NumberOfSeasons is the season count of a TV show. Zero for movies.
	NumberOfSeasons int `json:"number_of_seasons"`

	// NumberOfEpisodes is the episode count of a TV show. Zero for movies.
	NumberOfEpisodes int `json:"number_of_episodes"`

	// Status is the production status, e.g. "Released" or "Ended".
	Status string `json:"status"`

	// Homepage is the official site URL, often empty.
	Homepage string `json:"homepage"`
}

// GenresLine joins the genre names with commas, or returns "" when the
// record carries no genres.
func (d MediaDetails) GenresLine() string {
	if len(d.Genres) == 0 {
		return ""
	}

	names := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		names = append(names, g.Name)
	}

	return strings.Join(names, ", ")
}

// LengthLabel describes the item's length: "134 min" for movies,
// "2 seasons, 18 episodes" for TV shows, "" when nothing is known.
func (d MediaDetails) LengthLabel() string {
	if d.Runtime > 0 {
		return fmt.Sprintf("%d min", d.Runtime)
	}
	if d.NumberOfSeasons > 0 {
		return fmt.Sprintf("%d seasons, %d episodes", d.NumberOfSeasons, d.NumberOfEpisodes)
	}

	return ""
}
