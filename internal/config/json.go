package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	TMDB struct {
		APIKey         string   `json:"api_key"`
		BaseURL        string   `json:"base_url"`
		ImageBaseURL   string   `json:"image_base_url"`
		Language       string   `json:"language"`
		RequestTimeout Duration `json:"request_timeout"`
		ImageTimeout   Duration `json:"image_timeout"`
		PosterSize     string   `json:"poster_size"`
		BackdropSize   string   `json:"backdrop_size"`
	} `json:"tmdb,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			PosterCacheDir string `json:"poster_cache_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		PrefetchWorkers int `json:"prefetch_workers"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		TMDB: TMDB{
			APIKey:         jsonCfg.TMDB.APIKey,
			BaseURL:        jsonCfg.TMDB.BaseURL,
			ImageBaseURL:   jsonCfg.TMDB.ImageBaseURL,
			Language:       jsonCfg.TMDB.Language,
			RequestTimeout: time.Duration(jsonCfg.TMDB.RequestTimeout),
			ImageTimeout:   time.Duration(jsonCfg.TMDB.ImageTimeout),
			PosterSize:     jsonCfg.TMDB.PosterSize,
			BackdropSize:   jsonCfg.TMDB.BackdropSize,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				PosterCacheDir: jsonCfg.Storage.Files.PosterCacheDir,
			},
		},
		Workers: Workers{
			PrefetchWorkers: jsonCfg.Workers.PrefetchWorkers,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
