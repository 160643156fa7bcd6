package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/recipe-catalog/internal/domain"
)

// MapError wraps a pgx/pgconn error with the failing operation name.
// context.DeadlineExceeded and context.Canceled stay matchable through errors.Is.
// Check, not-null and range violations surface as domain.ErrValidation.
func MapError(err error, op string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		// check_violation, not_null_violation, numeric_value_out_of_range
		case "23514", "23502", "22003":
			return fmt.Errorf("%s: %s: %w", op, pgErr.Message, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}
