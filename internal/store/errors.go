package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a lookup by username produces an
	// empty result set. The username comparison is exact and case-sensitive,
	// so "Admin" and "admin" are different users.
	ErrUserNotFound = errors.New("no user was found")

	// ErrPosterNotCached is returned when the poster cache has no entry for
	// the requested image path. Callers are expected to fetch the bytes from
	// the network and save them.
	ErrPosterNotCached = errors.New("poster is not cached")

	// ErrInvalidImagePath is returned when an image path cannot be mapped to
	// a cache file name (e.g. empty string or a bare separator).
	ErrInvalidImagePath = errors.New("invalid image path")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrOpeningDatabase is returned when a per-operation connection to the
	// SQLite file cannot be opened.
	ErrOpeningDatabase = errors.New("error opening database")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination fails.
	ErrScanningRow = errors.New("failed to scan row")
)
