package catalog

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"sportsinventory/internal/domain"
	"sportsinventory/internal/pkg/logger"
)

type Service struct {
	categories CategoryRepository
	equipment  EquipmentRepository
	suppliers  SupplierRepository
	tx         TxRunner
}

func NewService(
	categories CategoryRepository,
	equipment EquipmentRepository,
	suppliers SupplierRepository,
	tx TxRunner,
) *Service {
	return &Service{categories, equipment, suppliers, tx}
}

/* ---------- CATEGORIES ---------- */

func (s *Service) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	c := &domain.Category{Name: name}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	return s.categories.GetByID(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *Service) RenameCategory(ctx context.Context, id int64, name string) (*domain.Category, error) {
	c := &domain.Category{ID: id, Name: name}
	if err := s.categories.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCategory removes the category; its equipment stays in stock
// without a category.
func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.categories.Delete(ctx, id)
	})
}

/* ---------- EQUIPMENT ---------- */

// AddEquipment stocks a new item and returns it with its assigned id.
// Negative quantity or price, or a price finer than cents, is a
// constraint violation; an unknown category is a referential one.
func (s *Service) AddEquipment(ctx context.Context, name string, categoryID *int64, quantity int, price decimal.Decimal) (*domain.Equipment, error) {
	e := &domain.Equipment{
		Name:       name,
		CategoryID: categoryID,
		Quantity:   quantity,
		Price:      price,
	}
	if err := s.equipment.Create(ctx, e); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).WithFields(logrus.Fields{
		"equipment_id": e.ID,
		"quantity":     e.Quantity,
		"price":        e.Price.StringFixed(domain.MoneyScale),
	}).Info("equipment added")
	return e, nil
}

func (s *Service) GetEquipment(ctx context.Context, id int64) (*domain.Equipment, error) {
	return s.equipment.GetByID(ctx, id)
}

func (s *Service) ListEquipment(ctx context.Context) ([]domain.Equipment, error) {
	return s.equipment.List(ctx)
}

func (s *Service) ListEquipmentByCategory(ctx context.Context, categoryID int64) ([]domain.Equipment, error) {
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.equipment.ListByCategory(ctx, categoryID)
}

// UpdateEquipment edits the row under the same lock sales take. Stock is
// only written when the request sets a quantity.
func (s *Service) UpdateEquipment(ctx context.Context, id int64, req UpdateEquipmentRequest) (*domain.Equipment, error) {
	var out *domain.Equipment
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		e, err := s.equipment.LockByID(ctx, id)
		if err != nil {
			return err
		}
		req.apply(e)
		if req.Quantity != nil {
			err = s.equipment.Update(ctx, e)
		} else {
			err = s.equipment.UpdateDetails(ctx, e)
		}
		if err != nil {
			return err
		}
		out, err = s.equipment.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteEquipment refuses items that appear in recorded sales.
func (s *Service) DeleteEquipment(ctx context.Context, id int64) error {
	return s.equipment.Delete(ctx, id)
}

/* ---------- SUPPLIERS ---------- */

func (s *Service) CreateSupplier(ctx context.Context, req SupplierRequest) (*domain.Supplier, error) {
	sup := req.toDomain()
	if err := s.suppliers.Create(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *Service) GetSupplier(ctx context.Context, id int64) (*domain.Supplier, error) {
	return s.suppliers.GetByID(ctx, id)
}

func (s *Service) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	return s.suppliers.List(ctx)
}

func (s *Service) UpdateSupplier(ctx context.Context, id int64, req SupplierRequest) (*domain.Supplier, error) {
	sup := req.toDomain()
	sup.ID = id
	if err := s.suppliers.Update(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *Service) DeleteSupplier(ctx context.Context, id int64) error {
	return s.suppliers.Delete(ctx, id)
}
