package repository

import (
	"context"

	"gorm.io/gorm"

	"sportsinventory/internal/domain"
)

// TransactionRepository stores sales. There is no Update or Delete: a
// recorded sale is a historical fact.
type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	if t.Quantity <= 0 {
		return invalidQuantity(t.Quantity)
	}
	if ok, err := exists(ctx, r.db, &domain.Customer{}, t.CustomerID); err != nil {
		return translateError(err)
	} else if !ok {
		return danglingReference("customer", t.CustomerID)
	}
	if ok, err := exists(ctx, r.db, &domain.Equipment{}, t.EquipmentID); err != nil {
		return translateError(err)
	} else if !ok {
		return danglingReference("equipment", t.EquipmentID)
	}

	t.ID = 0
	t.Customer, t.Equipment = nil, nil
	return translateError(conn(ctx, r.db).Create(t).Error)
}

func (r *TransactionRepository) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	var t domain.Transaction
	if err := conn(ctx, r.db).First(&t, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &t, nil
}

func (r *TransactionRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Transaction, error) {
	var out []domain.Transaction
	if err := conn(ctx, r.db).Where("customer_id = ?", customerID).Order("id").Find(&out).Error; err != nil {
		return nil, translateError(err)
	}
	return out, nil
}

// ListByCustomerAfter returns up to limit sales of the customer with id > afterID,
// ordered by id. It is the page primitive for keyset iteration.
func (r *TransactionRepository) ListByCustomerAfter(ctx context.Context, customerID, afterID int64, limit int) ([]domain.Transaction, error) {
	var out []domain.Transaction
	err := conn(ctx, r.db).
		Where("customer_id = ? AND id > ?", customerID, afterID).
		Order("id").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, translateError(err)
	}
	return out, nil
}
