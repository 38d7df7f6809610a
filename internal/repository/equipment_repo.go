package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sportsinventory/internal/domain"
	"sportsinventory/internal/pkg/validator"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

func (r *EquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	if err := r.check(ctx, e); err != nil {
		return err
	}
	e.ID = 0
	e.Category = nil
	if err := conn(ctx, r.db).Create(e).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	var e domain.Equipment
	if err := conn(ctx, r.db).First(&e, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &e, nil
}

// LockByID reads the row with SELECT ... FOR UPDATE. It must run inside a
// transaction; SQLite has no row locks and the clause is dropped there.
func (r *EquipmentRepository) LockByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	var e domain.Equipment
	err := conn(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&e, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &e, nil
}

func (r *EquipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	var out []domain.Equipment
	if err := conn(ctx, r.db).Order("id").Find(&out).Error; err != nil {
		return nil, translateError(err)
	}
	return out, nil
}

func (r *EquipmentRepository) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Equipment, error) {
	var out []domain.Equipment
	if err := conn(ctx, r.db).Where("category_id = ?", categoryID).Order("id").Find(&out).Error; err != nil {
		return nil, translateError(err)
	}
	return out, nil
}

// Update writes every editable column, quantity included. Run it on a row
// read with LockByID so a concurrent sale's decrement is not overwritten.
func (r *EquipmentRepository) Update(ctx context.Context, e *domain.Equipment) error {
	return r.update(ctx, e, map[string]any{
		"name":        e.Name,
		"category_id": e.CategoryID,
		"quantity":    e.Quantity,
		"price":       e.Price,
	})
}

// UpdateDetails writes name, category and price and leaves stock alone.
func (r *EquipmentRepository) UpdateDetails(ctx context.Context, e *domain.Equipment) error {
	return r.update(ctx, e, map[string]any{
		"name":        e.Name,
		"category_id": e.CategoryID,
		"price":       e.Price,
	})
}

func (r *EquipmentRepository) update(ctx context.Context, e *domain.Equipment, columns map[string]any) error {
	if err := r.check(ctx, e); err != nil {
		return err
	}
	res := conn(ctx, r.db).Model(&domain.Equipment{}).
		Where("id = ?", e.ID).
		Updates(columns)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("equipment", e.ID)
	}
	return nil
}

// DecrementStock subtracts qty only while enough stock remains. It reports
// false, without error, when the row exists but holds less than qty.
func (r *EquipmentRepository) DecrementStock(ctx context.Context, id int64, qty int) (bool, error) {
	res := conn(ctx, r.db).Model(&domain.Equipment{}).
		Where("id = ? AND quantity >= ?", id, qty).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", qty))
	if res.Error != nil {
		return false, translateError(res.Error)
	}
	return res.RowsAffected == 1, nil
}

// Delete refuses to drop equipment that appears in recorded sales.
func (r *EquipmentRepository) Delete(ctx context.Context, id int64) error {
	db := conn(ctx, r.db)

	var refs int64
	if err := db.Model(&domain.Transaction{}).Where("equipment_id = ?", id).Count(&refs).Error; err != nil {
		return translateError(err)
	}
	if refs > 0 {
		return fmt.Errorf("%w: equipment %d has transactions", domain.ErrReferentialIntegrity, id)
	}

	res := db.Delete(&domain.Equipment{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("equipment", id)
	}
	return nil
}

func (r *EquipmentRepository) check(ctx context.Context, e *domain.Equipment) error {
	if err := validator.Check(e); err != nil {
		return err
	}
	if e.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", domain.ErrConstraintViolation)
	}
	if !domain.HasMoneyScale(e.Price) {
		return fmt.Errorf("%w: price has more than %d fractional digits", domain.ErrConstraintViolation, domain.MoneyScale)
	}
	if e.CategoryID != nil {
		ok, err := exists(ctx, r.db, &domain.Category{}, *e.CategoryID)
		if err != nil {
			return translateError(err)
		}
		if !ok {
			return danglingReference("category", *e.CategoryID)
		}
	}
	return nil
}
