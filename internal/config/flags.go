package config

import (
	"errors"
	"flag"
	"strconv"
	"strings"
	"time"
)

// ImageSize holds a TMDb image size segment such as "w500" or "original".
// It implements the flag.Value interface.
type ImageSize struct {
	Value string
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database DSN (path to the local SQLite file)
//	-c/-config json file path with configs
//	-api-key TMDb API key
//	-language content language tag (e.g., "en-US")
//	-request-timeout catalog request timeout (e.g., "5s")
//	-image-timeout image download timeout (e.g., "3s")
//	-cache-dir poster cache directory
//	-prefetch-workers number of poster prefetch goroutines
//	-poster-size TMDb poster size segment (e.g., "w500")
//	-backdrop-size TMDb backdrop size segment (e.g., "w1280")
func ParseFlags() *StructuredConfig {
	var posterSize, backdropSize ImageSize
	var databaseDSN string
	var jsonConfigPath string
	var apiKey string
	var language string
	var requestTimeout time.Duration
	var imageTimeout time.Duration
	var cacheDir string
	var prefetchWorkers int

	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&apiKey, "api-key", "", "TMDb API key")
	flag.StringVar(&language, "language", "", "Content language tag")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Catalog request timeout (e.g., 5s)")
	flag.DurationVar(&imageTimeout, "image-timeout", 0, "Image download timeout (e.g., 3s)")
	flag.StringVar(&cacheDir, "cache-dir", "", "Poster cache directory")
	flag.IntVar(&prefetchWorkers, "prefetch-workers", 0, "Poster prefetch worker count")
	flag.Var(&posterSize, "poster-size", "TMDb poster size segment (w500, original, ...)")
	flag.Var(&backdropSize, "backdrop-size", "TMDb backdrop size segment (w1280, original, ...)")

	flag.Parse()

	return &StructuredConfig{
		TMDB: TMDB{
			APIKey:         apiKey,
			Language:       language,
			RequestTimeout: requestTimeout,
			ImageTimeout:   imageTimeout,
			PosterSize:     posterSize.String(),
			BackdropSize:   backdropSize.String(),
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				PosterCacheDir: cacheDir,
			},
		},
		Workers: Workers{
			PrefetchWorkers: prefetchWorkers,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns the stored size segment, or an empty string when the flag
// was never set.
func (s *ImageSize) String() string {
	return s.Value
}

// Set validates and stores a TMDb size segment. Accepted forms are
// "original" and "w" followed by a positive pixel width, matching the
// segments TMDb publishes in its image configuration.
func (s *ImageSize) Set(v string) error {
	if v == "original" {
		s.Value = v
		return nil
	}

	width, ok := strings.CutPrefix(v, "w")
	if !ok {
		return errors.New("need a size in a form `w<width>` or `original`")
	}

	n, err := strconv.Atoi(width)
	if err != nil {
		return err
	}

	if n < 1 {
		return errors.New("image width is a positive integer")
	}

	s.Value = v
	return nil
}
