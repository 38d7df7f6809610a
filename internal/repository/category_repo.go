package repository

import (
	"context"

	"gorm.io/gorm"

	"sportsinventory/internal/domain"
	"sportsinventory/internal/pkg/validator"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	if err := validator.Check(c); err != nil {
		return err
	}
	c.ID = 0
	return translateError(conn(ctx, r.db).Create(c).Error)
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var c domain.Category
	if err := conn(ctx, r.db).First(&c, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	if err := conn(ctx, r.db).Order("id").Find(&out).Error; err != nil {
		return nil, translateError(err)
	}
	return out, nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *domain.Category) error {
	if err := validator.Check(c); err != nil {
		return err
	}
	res := conn(ctx, r.db).Model(&domain.Category{}).Where("id = ?", c.ID).Update("name", c.Name)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("category", c.ID)
	}
	return nil
}

// Delete removes the category and detaches its equipment. Callers wanting
// both statements to land together run it inside TxManager.WithinTx.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	db := conn(ctx, r.db)
	if err := db.Model(&domain.Equipment{}).Where("category_id = ?", id).Update("category_id", nil).Error; err != nil {
		return translateError(err)
	}
	res := db.Delete(&domain.Category{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("category", id)
	}
	return nil
}
