package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sportsinventory/internal/database/dbtest"
	"sportsinventory/internal/domain"
	"sportsinventory/internal/repository"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db := dbtest.Open(t)
	svc := NewService(
		repository.NewCategoryRepository(db),
		repository.NewEquipmentRepository(db),
		repository.NewSupplierRepository(db),
		repository.NewTxManager(db),
	)
	return svc, db
}

func TestAddEquipment_RoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	cat, err := svc.CreateCategory(ctx, "Football")
	require.NoError(t, err)

	added, err := svc.AddEquipment(ctx, "Football", &cat.ID, 100, decimal.RequireFromString("25.99"))
	require.NoError(t, err)
	require.NotZero(t, added.ID)

	got, err := svc.GetEquipment(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, "Football", got.Name)
	require.NotNil(t, got.CategoryID)
	assert.Equal(t, cat.ID, *got.CategoryID)
	assert.Equal(t, 100, got.Quantity)
	assert.Equal(t, "25.99", got.Price.StringFixed(2))
}

func TestAddEquipment_InvalidInput(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	missing := int64(42)

	tests := []struct {
		name     string
		itemName string
		category *int64
		quantity int
		price    string
		want     error
	}{
		{"empty name", "", nil, 1, "1.00", domain.ErrConstraintViolation},
		{"negative quantity", "Ball", nil, -1, "1.00", domain.ErrConstraintViolation},
		{"negative price", "Ball", nil, 1, "-0.01", domain.ErrConstraintViolation},
		{"sub-cent price", "Ball", nil, 1, "1.001", domain.ErrConstraintViolation},
		{"unknown category", "Ball", &missing, 1, "1.00", domain.ErrReferentialIntegrity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddEquipment(ctx, tt.itemName, tt.category, tt.quantity, decimal.RequireFromString(tt.price))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	items, err := svc.ListEquipment(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUpdateEquipment(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	cat, err := svc.CreateCategory(ctx, "Tennis")
	require.NoError(t, err)
	item, err := svc.AddEquipment(ctx, "Tennis Racket", &cat.ID, 30, decimal.RequireFromString("79.99"))
	require.NoError(t, err)

	qty := 25
	price := decimal.RequireFromString("74.50")
	got, err := svc.UpdateEquipment(ctx, item.ID, UpdateEquipmentRequest{Quantity: &qty, Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 25, got.Quantity)
	assert.Equal(t, "74.50", got.Price.StringFixed(2))
	assert.NotNil(t, got.CategoryID)

	got, err = svc.UpdateEquipment(ctx, item.ID, UpdateEquipmentRequest{ClearCategory: true})
	require.NoError(t, err)
	assert.Nil(t, got.CategoryID)

	negative := -5
	_, err = svc.UpdateEquipment(ctx, item.ID, UpdateEquipmentRequest{Quantity: &negative})
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)

	_, err = svc.UpdateEquipment(ctx, 999, UpdateEquipmentRequest{Quantity: &qty})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// staleEquipment hands UpdateEquipment a quantity that a sale has since
// reduced, as a read racing a committed decrement would see it.
type staleEquipment struct {
	*repository.EquipmentRepository
	locked bool
}

func (s *staleEquipment) LockByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	s.locked = true
	e, err := s.EquipmentRepository.LockByID(ctx, id)
	if err == nil {
		e.Quantity += 2
	}
	return e, err
}

func TestUpdateEquipment_PriceChangeKeepsSoldStock(t *testing.T) {
	_, db := newTestService(t)
	ctx := context.Background()
	equipment := &staleEquipment{EquipmentRepository: repository.NewEquipmentRepository(db)}
	svc := NewService(
		repository.NewCategoryRepository(db),
		equipment,
		repository.NewSupplierRepository(db),
		repository.NewTxManager(db),
	)

	item, err := svc.AddEquipment(ctx, "Football", nil, 10, decimal.RequireFromString("25.99"))
	require.NoError(t, err)
	sold, err := equipment.DecrementStock(ctx, item.ID, 2)
	require.NoError(t, err)
	require.True(t, sold)

	price := decimal.RequireFromString("27.50")
	got, err := svc.UpdateEquipment(ctx, item.ID, UpdateEquipmentRequest{Price: &price})
	require.NoError(t, err)
	assert.True(t, equipment.locked)
	assert.Equal(t, "27.50", got.Price.StringFixed(2))
	assert.Equal(t, 8, got.Quantity)

	qty := 40
	got, err = svc.UpdateEquipment(ctx, item.ID, UpdateEquipmentRequest{Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, 40, got.Quantity)
}

func TestDeleteCategory_DetachesEquipment(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	cat, err := svc.CreateCategory(ctx, "Basketball")
	require.NoError(t, err)
	item, err := svc.AddEquipment(ctx, "Basketball", &cat.ID, 50, decimal.RequireFromString("29.99"))
	require.NoError(t, err)

	inCategory, err := svc.ListEquipmentByCategory(ctx, cat.ID)
	require.NoError(t, err)
	assert.Len(t, inCategory, 1)

	require.NoError(t, svc.DeleteCategory(ctx, cat.ID))

	got, err := svc.GetEquipment(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CategoryID)
	assert.Equal(t, 50, got.Quantity)

	_, err = svc.ListEquipmentByCategory(ctx, cat.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteCategory(ctx, cat.ID), domain.ErrNotFound)
}

func TestCategories_UniqueName(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, "Football")
	require.NoError(t, err)
	_, err = svc.CreateCategory(ctx, "Football")
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)

	renamed, err := svc.RenameCategory(ctx, 1, "Soccer")
	require.NoError(t, err)
	assert.Equal(t, "Soccer", renamed.Name)

	_, err = svc.RenameCategory(ctx, 999, "Ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSuppliers_CRUD(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	sup, err := svc.CreateSupplier(ctx, SupplierRequest{
		Name: "Sports Supplies Co.", Contact: "Alice Johnson", Email: "alice@sportsupplies.com",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateSupplier(ctx, sup.ID, SupplierRequest{
		Name: "Sports Supplies Co.", Contact: "Bob Brown", Email: "alice@sportsupplies.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bob Brown", updated.Contact)

	list, err := svc.ListSuppliers(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.DeleteSupplier(ctx, sup.ID))
	_, err = svc.GetSupplier(ctx, sup.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
