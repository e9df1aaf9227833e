package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgDuplicateKeyCode = "23505"

// ErrUnavailable indicates the data store did not answer within the caller's
// deadline. Callers surface it to the client; no retry happens at this layer.
var ErrUnavailable = errors.New("data store unavailable")

// MapError translates database errors to domain errors.
// sql.ErrNoRows maps to notFoundErr, PostgreSQL unique violation (23505)
// to duplicateErr, and context expiry to ErrUnavailable. Other errors are
// returned unchanged.
func MapError(err error, notFoundErr, duplicateErr error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return notFoundErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgDuplicateKeyCode {
		return duplicateErr
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrUnavailable
	}

	return err
}
