package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"sportsinventory/internal/domain"
	"sportsinventory/internal/pkg/validator"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	if err := validator.Check(c); err != nil {
		return err
	}
	c.ID = 0
	if err := conn(ctx, r.db).Create(c).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var c domain.Customer
	if err := conn(ctx, r.db).First(&c, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	var c domain.Customer
	if err := conn(ctx, r.db).Where("email = ?", email).First(&c).Error; err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

func (r *CustomerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ok, err := exists(ctx, r.db, &domain.Customer{}, id)
	return ok, translateError(err)
}

func (r *CustomerRepository) List(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	var out []domain.Customer
	q := conn(ctx, r.db).Order("id")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, translateError(err)
	}
	return out, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	if err := validator.Check(c); err != nil {
		return err
	}
	res := conn(ctx, r.db).Model(&domain.Customer{}).
		Where("id = ?", c.ID).
		Select("name", "email", "phone", "address", "updated_at").
		Updates(c)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("customer", c.ID)
	}
	return nil
}

// Delete removes a customer that no sale or penalty refers to.
func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	db := conn(ctx, r.db)

	var refs int64
	if err := db.Model(&domain.Transaction{}).Where("customer_id = ?", id).Count(&refs).Error; err != nil {
		return translateError(err)
	}
	if refs == 0 {
		if err := db.Model(&domain.Penalty{}).Where("customer_id = ?", id).Count(&refs).Error; err != nil {
			return translateError(err)
		}
	}
	if refs > 0 {
		return fmt.Errorf("%w: customer %d has transactions or penalties", domain.ErrReferentialIntegrity, id)
	}

	res := db.Delete(&domain.Customer{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("customer", id)
	}
	return nil
}
