// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-movie-browser/models"
)

// queryBuilder produces SQLite-flavoured queries with ? placeholders.
var queryBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildInsertUserQuery renders the conflict-tolerant insert for a new user.
// ON CONFLICT DO NOTHING keeps whatever credential is already stored for the
// username; the caller inspects RowsAffected to tell the two outcomes apart.
func buildInsertUserQuery(user models.User) (string, []any, error) {
	return queryBuilder.
		Insert(user.TableName()).
		Columns("username", "password").
		Values(user.Username, user.Credential).
		Suffix("ON CONFLICT (username) DO NOTHING").
		ToSql()
}

// buildFindCredentialQuery renders the credential lookup for the exact
// username. SQLite TEXT comparison is case-sensitive, which is what local
// sign-in wants.
func buildFindCredentialQuery(username string) (string, []any, error) {
	return queryBuilder.
		Select("password").
		From("users").
		Where(sq.Eq{"username": username}).
		ToSql()
}
