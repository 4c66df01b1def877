package store

import (
	"context"

	"github.com/MKhiriev/go-movie-browser/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists the username to credential mapping used by local
// sign-in.
type UserRepository interface {
	// CreateUser inserts a new user record. A conflicting username leaves
	// the stored credential untouched and reports AlreadyExists.
	CreateUser(ctx context.Context, user models.User) (InsertResult, error)
	// FindCredential returns the stored credential string for the exact
	// username, or ErrUserNotFound.
	FindCredential(ctx context.Context, username string) (string, error)
}

// PosterFileCache stores downloaded poster and backdrop bytes on disk, keyed
// by the TMDb image path.
type PosterFileCache interface {
	Load(ctx context.Context, imagePath string) ([]byte, error)
	Save(ctx context.Context, imagePath string, data []byte) error
	File(imagePath string) (string, error)
}
