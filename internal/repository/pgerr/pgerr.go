// Package pgerr classifies the Postgres error codes the repositories
// translate into domain errors.
package pgerr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsUniqueViolation reports a unique constraint violation (23505).
func IsUniqueViolation(err error) bool {
	return code(err) == "23505"
}

// IsInvalidID reports an invalid text representation (22P02), raised
// when a client-supplied id is not a valid UUID. Such an id can match
// no row, so callers treat it like a miss rather than a server fault.
func IsInvalidID(err error) bool {
	return code(err) == "22P02"
}

func code(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
