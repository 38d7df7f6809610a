package sales

import (
	"fmt"

	"sportsinventory/internal/domain"
)

// Guard checks equipment state after a stock mutation, before commit.
type Guard interface {
	Validate(e *domain.Equipment) error
}

// StockGuard enforces quantity >= 0.
type StockGuard struct{}

func (StockGuard) Validate(e *domain.Equipment) error {
	if e == nil {
		return fmt.Errorf("%w: equipment row vanished during sale", domain.ErrInvariantViolation)
	}
	if e.Quantity < 0 {
		return fmt.Errorf("%w: equipment %d quantity %d", domain.ErrInvariantViolation, e.ID, e.Quantity)
	}
	return nil
}
