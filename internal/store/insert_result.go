// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// InsertResult reports the outcome of an insert that tolerates key conflicts
// instead of failing on them. The zero value is invalid; a valid result is
// only produced together with a nil error.
type InsertResult int

const (
	// Inserted means a new row was written.
	Inserted InsertResult = iota + 1
	// AlreadyExists means a row with the same key was already present and
	// was left untouched.
	AlreadyExists
)

// String returns a human-readable label for logging.
func (r InsertResult) String() string {
	switch r {
	case Inserted:
		return "inserted"
	case AlreadyExists:
		return "already exists"
	default:
		return "unknown"
	}
}
