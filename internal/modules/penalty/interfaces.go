package penalty

import (
	"context"

	"github.com/shopspring/decimal"

	"sportsinventory/internal/domain"
)

type CustomerRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type PenaltyRepository interface {
	Create(ctx context.Context, p *domain.Penalty) error
	GetByID(ctx context.Context, id int64) (*domain.Penalty, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Penalty, error)
	SumByCustomer(ctx context.Context, customerID int64) (decimal.Decimal, error)
}

type TransactionRepository interface {
	ListByCustomerAfter(ctx context.Context, customerID, afterID int64, limit int) ([]domain.Transaction, error)
}
