package sales

import (
	"context"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sportsinventory/internal/database/dbtest"
	"sportsinventory/internal/domain"
	"sportsinventory/internal/metrics"
	"sportsinventory/internal/repository"
)

type fixture struct {
	db        *gorm.DB
	svc       *Service
	metrics   *metrics.Metrics
	equipment *repository.EquipmentRepository
	customer  *domain.Customer
	item      *domain.Equipment
}

func setupFixture(t *testing.T, stock int, price string) *fixture {
	t.Helper()
	return setupFixtureOn(t, dbtest.Open(t), stock, price)
}

func setupFixtureOn(t *testing.T, db *gorm.DB, stock int, price string) *fixture {
	t.Helper()
	ctx := context.Background()

	customers := repository.NewCustomerRepository(db)
	equipment := repository.NewEquipmentRepository(db)

	c := &domain.Customer{Name: "John Doe", Email: "john@example.com"}
	require.NoError(t, customers.Create(ctx, c))
	e := &domain.Equipment{Name: "Football", Quantity: stock, Price: decimal.RequireFromString(price)}
	require.NoError(t, equipment.Create(ctx, e))

	m := metrics.New(prometheus.NewRegistry())
	svc := NewService(customers, equipment, repository.NewTransactionRepository(db), repository.NewTxManager(db), m)
	return &fixture{db: db, svc: svc, metrics: m, equipment: equipment, customer: c, item: e}
}

func (f *fixture) stock(t *testing.T) int {
	t.Helper()
	e, err := f.equipment.GetByID(context.Background(), f.item.ID)
	require.NoError(t, err)
	return e.Quantity
}

func (f *fixture) transactionCount(t *testing.T) int64 {
	t.Helper()
	var cnt int64
	require.NoError(t, f.db.Model(&domain.Transaction{}).Count(&cnt).Error)
	return cnt
}

func TestProcessTransaction_DecrementsStockAndRecordsSale(t *testing.T) {
	f := setupFixture(t, 10, "25.99")

	txn, err := f.svc.ProcessTransaction(context.Background(), f.customer.ID, f.item.ID, 2)
	require.NoError(t, err)

	assert.NotZero(t, txn.ID)
	assert.Equal(t, 2, txn.Quantity)
	assert.Equal(t, "51.98", txn.TotalPrice.StringFixed(2))
	assert.False(t, txn.TransactionDate.IsZero())

	assert.Equal(t, 8, f.stock(t))
	assert.EqualValues(t, 1, f.transactionCount(t))

	stored, err := f.svc.GetTransaction(context.Background(), txn.ID)
	require.NoError(t, err)
	assert.True(t, stored.TotalPrice.Equal(TotalPrice(f.item.Price, stored.Quantity)))

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.SalesTotal.WithLabelValues(ResultSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(f.metrics.UnitsSold))
}

func TestProcessTransaction_InsufficientStockLeavesNoTrace(t *testing.T) {
	f := setupFixture(t, 3, "10.00")

	_, err := f.svc.ProcessTransaction(context.Background(), f.customer.ID, f.item.ID, 4)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 3, f.stock(t))
	assert.Zero(t, f.transactionCount(t))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.SalesTotal.WithLabelValues(ResultInsufficientStock)))
}

func TestProcessTransaction_SellsLastUnit(t *testing.T) {
	f := setupFixture(t, 2, "5.50")

	_, err := f.svc.ProcessTransaction(context.Background(), f.customer.ID, f.item.ID, 2)
	require.NoError(t, err)
	assert.Zero(t, f.stock(t))

	_, err = f.svc.ProcessTransaction(context.Background(), f.customer.ID, f.item.ID, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Zero(t, f.stock(t))
}

func TestProcessTransaction_RejectsBadInput(t *testing.T) {
	f := setupFixture(t, 5, "1.00")
	ctx := context.Background()

	for _, qty := range []int{0, -3} {
		_, err := f.svc.ProcessTransaction(ctx, f.customer.ID, f.item.ID, qty)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	}

	_, err := f.svc.ProcessTransaction(ctx, 999, f.item.ID, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.svc.ProcessTransaction(ctx, f.customer.ID, 999, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, 5, f.stock(t))
	assert.Zero(t, f.transactionCount(t))
}

// buyConcurrently starts buyers single-unit purchases at once and returns
// how many succeeded. Every failure must be ErrInsufficientStock.
func buyConcurrently(t *testing.T, f *fixture, buyers int) int {
	t.Helper()
	errs := make([]error, buyers)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = f.svc.ProcessTransaction(context.Background(), f.customer.ID, f.item.ID, 1)
		}(i)
	}
	close(start)
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	}
	return succeeded
}

// SQLite runs with one connection, so the buyers here are serialised by the
// pool and never contend on the row lock. TestProcessTransaction_RowLockOnPostgres
// covers the FOR UPDATE path.
func TestProcessTransaction_ConcurrentBuyersOfLastUnit(t *testing.T) {
	f := setupFixture(t, 1, "99.00")

	assert.Equal(t, 1, buyConcurrently(t, f, 2))
	assert.Zero(t, f.stock(t))
	assert.EqualValues(t, 1, f.transactionCount(t))
}

func TestProcessTransaction_RowLockOnPostgres(t *testing.T) {
	f := setupFixtureOn(t, dbtest.OpenPostgres(t), 5, "19.99")

	assert.Equal(t, 5, buyConcurrently(t, f, 20))
	assert.Zero(t, f.stock(t))
	assert.EqualValues(t, 5, f.transactionCount(t))
}

// corruptingEquipment reports a negative quantity after the decrement, as a
// racing writer that bypassed the conditional update would leave it.
type corruptingEquipment struct {
	*repository.EquipmentRepository
	decremented bool
}

func (c *corruptingEquipment) DecrementStock(ctx context.Context, id int64, qty int) (bool, error) {
	ok, err := c.EquipmentRepository.DecrementStock(ctx, id, qty)
	c.decremented = ok
	return ok, err
}

func (c *corruptingEquipment) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	e, err := c.EquipmentRepository.GetByID(ctx, id)
	if err == nil && c.decremented {
		e.Quantity = -1
	}
	return e, err
}

func TestProcessTransaction_GuardFailureRollsBackWholeUnit(t *testing.T) {
	f := setupFixture(t, 10, "12.00")
	eq := &corruptingEquipment{EquipmentRepository: f.equipment}
	svc := NewService(
		repository.NewCustomerRepository(f.db),
		eq,
		repository.NewTransactionRepository(f.db),
		repository.NewTxManager(f.db),
		f.metrics,
	)

	_, err := svc.ProcessTransaction(context.Background(), f.customer.ID, f.item.ID, 2)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.ErrorIs(t, err, domain.ErrInvariantViolation)

	assert.Equal(t, 10, f.stock(t))
	assert.Zero(t, f.transactionCount(t))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.SalesTotal.WithLabelValues(ResultInvariantViolation)))
}

func TestTotalPrice(t *testing.T) {
	assert.Equal(t, "51.98", TotalPrice(decimal.RequireFromString("25.99"), 2).StringFixed(2))
	assert.Equal(t, "0.00", TotalPrice(decimal.Zero, 7).StringFixed(2))
	assert.Equal(t, "300.00", TotalPrice(decimal.RequireFromString("100"), 3).StringFixed(2))
}

func TestStockGuard(t *testing.T) {
	g := StockGuard{}
	assert.NoError(t, g.Validate(&domain.Equipment{Quantity: 0}))
	assert.ErrorIs(t, g.Validate(&domain.Equipment{Quantity: -1}), domain.ErrInvariantViolation)
	assert.ErrorIs(t, g.Validate(nil), domain.ErrInvariantViolation)
}
