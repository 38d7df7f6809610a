package repository

import (
	"context"

	"gorm.io/gorm"

	"sportsinventory/internal/domain"
	"sportsinventory/internal/pkg/validator"
)

type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

func (r *SupplierRepository) Create(ctx context.Context, s *domain.Supplier) error {
	if err := validator.Check(s); err != nil {
		return err
	}
	s.ID = 0
	return translateError(conn(ctx, r.db).Create(s).Error)
}

func (r *SupplierRepository) GetByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	var s domain.Supplier
	if err := conn(ctx, r.db).First(&s, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &s, nil
}

func (r *SupplierRepository) List(ctx context.Context) ([]domain.Supplier, error) {
	var out []domain.Supplier
	if err := conn(ctx, r.db).Order("id").Find(&out).Error; err != nil {
		return nil, translateError(err)
	}
	return out, nil
}

func (r *SupplierRepository) Update(ctx context.Context, s *domain.Supplier) error {
	if err := validator.Check(s); err != nil {
		return err
	}
	res := conn(ctx, r.db).Model(&domain.Supplier{}).
		Where("id = ?", s.ID).
		Select("name", "contact", "email", "address").
		Updates(s)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("supplier", s.ID)
	}
	return nil
}

func (r *SupplierRepository) Delete(ctx context.Context, id int64) error {
	res := conn(ctx, r.db).Delete(&domain.Supplier{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("supplier", id)
	}
	return nil
}
