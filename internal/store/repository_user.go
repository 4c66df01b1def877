package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-movie-browser/internal/logger"
	"github.com/MKhiriev/go-movie-browser/models"
)

// userRepository is the SQLite-backed implementation of [UserRepository].
// It handles user account creation and credential lookup against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] and
// acquire their own short-lived database connection, closing it before
// returning.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("UserRepository created")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser writes a new username/credential row. When the username is
// already taken the insert affects zero rows and the stored credential stays
// as it was; that outcome is reported as [AlreadyExists], not as an error.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (InsertResult, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(user)
	if err != nil {
		log.Err(err).
			Str("func", "userRepository.CreateUser").
			Str("username", user.Username).
			Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	conn, err := r.db.acquire()
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	result, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "userRepository.CreateUser").
			Str("username", user.Username).
			Msg("failed to execute insert for user")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "userRepository.CreateUser").
			Str("username", user.Username).
			Msg("failed to read affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		log.Debug().
			Str("func", "userRepository.CreateUser").
			Str("username", user.Username).
			Msg("user already exists, stored credential kept")
		return AlreadyExists, nil
	}

	log.Debug().
		Str("func", "userRepository.CreateUser").
		Str("username", user.Username).
		Msg("user created")
	return Inserted, nil
}

// FindCredential returns the stored credential string for the given
// username. The match is exact and case-sensitive; a missing row maps to
// [ErrUserNotFound].
func (r *userRepository) FindCredential(ctx context.Context, username string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindCredentialQuery(username)
	if err != nil {
		log.Err(err).
			Str("func", "userRepository.FindCredential").
			Str("username", username).
			Msg("failed to create query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	conn, err := r.db.acquire()
	if err != nil {
		return "", err
	}
	defer conn.Close()

	row := conn.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "userRepository.FindCredential").
			Str("username", username).
			Msg("failed to execute query for credential lookup")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var credential string
	if err := row.Scan(&credential); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug().
				Str("func", "userRepository.FindCredential").
				Str("username", username).
				Msg("user not found")
			return "", ErrUserNotFound
		}

		log.Err(err).
			Str("func", "userRepository.FindCredential").
			Str("username", username).
			Msg("failed to scan credential row")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return credential, nil
}
