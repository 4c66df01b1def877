package service

import (
	"github.com/MKhiriev/go-movie-browser/internal/adapter"
	"github.com/MKhiriev/go-movie-browser/internal/config"
	"github.com/MKhiriev/go-movie-browser/internal/crypto"
	"github.com/MKhiriev/go-movie-browser/internal/logger"
	"github.com/MKhiriev/go-movie-browser/internal/store"
)

// Services bundles every application service the TUI works with.
type Services struct {
	Auth       AuthService
	Catalog    CatalogService
	Posters    PosterService
	Prefetcher PosterPrefetcher
}

// NewServices wires the full service layer: local sign-in over the user
// repository, the catalog over the TMDb adapter and the poster pipeline over
// the file cache, the image API and the prefetching pool.
func NewServices(storages *store.ClientStorages, catalog adapter.CatalogAPI, images adapter.ImageAPI, cfg config.ClientConfig, logger *logger.Logger) *Services {
	posters := NewPosterService(storages.PosterCache, images, cfg.TMDB, logger)

	return &Services{
		Auth:       NewAuthService(storages.UserRepository, crypto.NewPasswordHasher(), logger),
		Catalog:    NewCatalogService(catalog, logger),
		Posters:    posters,
		Prefetcher: NewPosterPrefetcher(posters, cfg.Workers, logger),
	}
}
