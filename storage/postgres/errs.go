package postgres

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	"github.com/rcastrogi/advocacia-sub002/models"
)

// handleError maps driver errors onto the service error taxonomy so callers
// never branch on Postgres error codes.
func handleError(err error, op string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrNotFound
	}

	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			// Unique violation
			return models.NewValidationError(pgErr.ConstraintName, "already exists")
		case "23503":
			// Foreign key violation
			return models.NewValidationError(pgErr.ConstraintName, "referenced record does not exist or is still referenced")
		case "23514":
			// Check constraint violation
			return models.NewValidationError(pgErr.ConstraintName, "check constraint violation")
		}
	}

	return errors.Wrap(err, op)
}
