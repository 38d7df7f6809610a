package sales

import (
	"context"

	"sportsinventory/internal/domain"
)

type CustomerRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type EquipmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	LockByID(ctx context.Context, id int64) (*domain.Equipment, error)
	DecrementStock(ctx context.Context, id int64, qty int) (bool, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, t *domain.Transaction) error
	GetByID(ctx context.Context, id int64) (*domain.Transaction, error)
}

// TxRunner executes fn atomically; repository calls using fn's ctx share the transaction.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type SaleRecorder interface {
	ObserveSale(result string, units int)
}
