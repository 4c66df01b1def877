package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-movie-browser/internal/logger"
	"github.com/MKhiriev/go-movie-browser/migrations"
)

// DB is a handle to the local SQLite database. It holds no open connection:
// every operation acquires a fresh *sql.DB via acquire and closes it before
// returning, so the database file is released between operations.
type DB struct {
	dsn    string
	open   func(dsn string) (*sql.DB, error)
	logger *logger.Logger
}

// acquire opens a connection for a single operation. The caller owns the
// returned handle and must close it on every exit path.
func (db *DB) acquire() (*sql.DB, error) {
	conn, err := db.open(db.dsn)
	if err != nil {
		db.logger.Err(err).Str("func", "DB.acquire").Msg("error opening connection to DB")
		return nil, fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}

	return conn, nil
}

// EnsureSchema applies the embedded goose migrations, bringing the users
// table up to date. Safe to call on every start.
func (db *DB) EnsureSchema(ctx context.Context) error {
	conn, err := db.acquire()
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.PingContext(ctx); err != nil {
		db.logger.Err(err).Str("func", "DB.EnsureSchema").Msg("error connecting database (ping)")
		return err
	}

	if err := migrations.Migrate(conn); err != nil {
		db.logger.Err(err).Str("func", "DB.EnsureSchema").Msg("error applying migrations")
		return err
	}

	db.logger.Debug().Str("func", "DB.EnsureSchema").Msg("database schema is up to date")
	return nil
}
