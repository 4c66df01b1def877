package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-movie-browser/internal/config"
	"github.com/MKhiriev/go-movie-browser/internal/logger"
)

// NewSQLiteStore builds a [DB] handle for the SQLite file named in cfg.DSN,
// creating the file when it does not exist yet. The connection is probed
// once with a ping and closed again; afterwards every repository operation
// opens and closes its own connection.
func NewSQLiteStore(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewSQLiteStore").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	db := &DB{
		dsn:    cfg.DSN,
		open:   openSQLite,
		logger: log,
	}

	conn, err := db.acquire()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSQLiteStore").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewSQLiteStore").Msg("connected to database successfully")

	return db, nil
}

func openSQLite(dsn string) (*sql.DB, error) {
	return sql.Open("sqlite3", dsn)
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
