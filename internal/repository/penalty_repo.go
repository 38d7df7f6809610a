package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"sportsinventory/internal/domain"
)

type PenaltyRepository struct {
	db *gorm.DB
}

func NewPenaltyRepository(db *gorm.DB) *PenaltyRepository {
	return &PenaltyRepository{db: db}
}

func (r *PenaltyRepository) Create(ctx context.Context, p *domain.Penalty) error {
	if !p.Amount.IsPositive() || !domain.HasMoneyScale(p.Amount) {
		return fmt.Errorf("%w: penalty amount %s", domain.ErrConstraintViolation, p.Amount)
	}
	if ok, err := exists(ctx, r.db, &domain.Customer{}, p.CustomerID); err != nil {
		return translateError(err)
	} else if !ok {
		return danglingReference("customer", p.CustomerID)
	}

	p.ID = 0
	p.Customer = nil
	return translateError(conn(ctx, r.db).Create(p).Error)
}

func (r *PenaltyRepository) GetByID(ctx context.Context, id int64) (*domain.Penalty, error) {
	var p domain.Penalty
	if err := conn(ctx, r.db).First(&p, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &p, nil
}

func (r *PenaltyRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Penalty, error) {
	var out []domain.Penalty
	if err := conn(ctx, r.db).Where("customer_id = ?", customerID).Order("id").Find(&out).Error; err != nil {
		return nil, translateError(err)
	}
	return out, nil
}

// SumByCustomer totals the customer's penalty amounts, zero when there are none.
func (r *PenaltyRepository) SumByCustomer(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	row := conn(ctx, r.db).
		Model(&domain.Penalty{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("customer_id = ?", customerID).
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, translateError(err)
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	// SQLite sums NUMERIC columns as floating point.
	return total.Decimal.Round(domain.MoneyScale), nil
}
