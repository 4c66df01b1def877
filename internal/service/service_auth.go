// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-movie-browser/internal/crypto"
	"github.com/MKhiriev/go-movie-browser/internal/logger"
	"github.com/MKhiriev/go-movie-browser/internal/store"
	"github.com/MKhiriev/go-movie-browser/models"
)

// Credentials of the demonstration account seeded on first start.
const (
	seedUsername = "admin"
	seedPassword = "admin123"
)

// authService is the concrete implementation of AuthService.
// It verifies passwords against credentials kept in the local user store and
// owns the seeding of the demonstration account.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces and checks the salted password credentials.
	hasher crypto.PasswordHasher

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// Bootstrap seeds the demonstration account with a freshly salted credential.
//
// When the account already exists the stored credential is kept as is, so
// restarting the application never rotates the admin password. Returns a
// wrapped storage error if the insert itself fails.
func (a *authService) Bootstrap(ctx context.Context) error {
	log := logger.FromContext(ctx)

	credential, err := a.hasher.HashPassword(seedPassword)
	if err != nil {
		log.Err(err).Str("func", "authService.Bootstrap").Msg("hashing seed password failed")
		return fmt.Errorf("hashing seed password failed: %w", err)
	}

	result, err := a.userRepository.CreateUser(ctx, models.User{Username: seedUsername, Credential: credential})
	if err != nil {
		log.Err(err).Str("func", "authService.Bootstrap").Str("username", seedUsername).Msg("seeding demo account failed")
		return fmt.Errorf("seeding demo account failed: %w", err)
	}

	if result == store.AlreadyExists {
		log.Debug().Str("func", "authService.Bootstrap").Str("username", seedUsername).Msg("demo account already present, stored credential kept")
		return nil
	}

	log.Info().Str("func", "authService.Bootstrap").Str("username", seedUsername).Msg("demo account seeded")
	return nil
}

// Verify checks the username/password pair against the stored credential.
//
// The username lookup is exact: comparison is case-sensitive and no trimming
// is applied. An unknown username and a wrong password both come back as
// (false, nil) so callers cannot tell which of the two happened. Only a
// storage failure produces a non-nil error.
func (a *authService) Verify(ctx context.Context, username, password string) (bool, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Debug().Str("func", "authService.Verify").Msg("empty username or password")
		return false, nil
	}

	stored, err := a.userRepository.FindCredential(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Same outcome as a wrong password on purpose.
			log.Debug().Str("func", "authService.Verify").Str("username", username).Msg("unknown user")
			return false, nil
		}
		log.Err(err).Str("func", "authService.Verify").Str("username", username).Msg("credential lookup failed")
		return false, fmt.Errorf("credential lookup failed: %w", err)
	}

	credential := models.ParseCredential(stored)
	if !a.hasher.Matches(password, credential) {
		log.Debug().Str("func", "authService.Verify").Str("username", username).Msg("wrong password")
		return false, nil
	}

	return true, nil
}
