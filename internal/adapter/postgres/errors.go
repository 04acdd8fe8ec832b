package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/mojam-curator/internal/domain"
)

// pgCodes maps constraint failures to the domain errors services check for.
var pgCodes = map[string]error{
	"23505": domain.ErrConflict,   // unique_violation
	"23503": domain.ErrNotFound,   // foreign_key_violation
	"23514": domain.ErrValidation, // check_violation
	"23502": domain.ErrValidation, // not_null_violation
}

// MapError prefixes err with the entity and row key, e.g.
// "passage لسان العرب/أبب: not found", translating missing rows and
// constraint failures into domain errors. Anything else, context errors
// included, is kept as the cause.
func MapError(err error, entity, key string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %s: %w", entity, key, classify(err))
}

func classify(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped, ok := pgCodes[pgErr.Code]; ok {
			return mapped
		}
	}
	return err
}

// Key joins a mojam and a root into the identifier used in error messages.
func Key(mojam, root string) string {
	return mojam + "/" + root
}
