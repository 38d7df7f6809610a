package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"sportsinventory/internal/domain"
)

// translateError maps gorm and driver errors onto the domain error taxonomy.
// Unknown errors are returned unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503":
			return fmt.Errorf("%w: %s", domain.ErrReferentialIntegrity, pgErr.ConstraintName)
		case "23505", "23502", "23514", "22001", "22003":
			return fmt.Errorf("%w: %s", domain.ErrConstraintViolation, pgErr.Message)
		}
	}

	switch {
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %w", domain.ErrReferentialIntegrity, err)
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("%w: %w", domain.ErrConstraintViolation, err)
	}

	// SQLite drivers only expose constraint failures through the message text.
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "foreign key constraint"):
		return fmt.Errorf("%w: %w", domain.ErrReferentialIntegrity, err)
	case strings.Contains(msg, "unique constraint"),
		strings.Contains(msg, "check constraint"),
		strings.Contains(msg, "not null constraint"):
		return fmt.Errorf("%w: %w", domain.ErrConstraintViolation, err)
	}
	return err
}

func notFound(kind string, id int64) error {
	return fmt.Errorf("%w: %s %d", domain.ErrNotFound, kind, id)
}

func danglingReference(kind string, id int64) error {
	return fmt.Errorf("%w: %s %d does not exist", domain.ErrReferentialIntegrity, kind, id)
}

func invalidQuantity(qty int) error {
	return fmt.Errorf("%w: quantity must be positive, got %d", domain.ErrConstraintViolation, qty)
}
