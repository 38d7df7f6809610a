package main

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"sportsinventory/internal/config"
	"sportsinventory/internal/database"
	"sportsinventory/internal/domain"
	"sportsinventory/internal/modules/catalog"
	"sportsinventory/internal/modules/customer"
	"sportsinventory/internal/modules/penalty"
	"sportsinventory/internal/modules/sales"
	"sportsinventory/internal/pkg/logger"
	"sportsinventory/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.WithError(err).Warn("failed to read .env")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("db connect failed")
	}
	defer database.Close(db)

	logrus.Info("running migrations")
	if err := database.Migrate(db); err != nil {
		logrus.WithError(err).Fatal("migration failed")
	}

	logrus.Info("cleaning old data")
	if err := clean(db); err != nil {
		logrus.WithError(err).Fatal("cleanup failed")
	}

	if err := seed(context.Background(), db); err != nil {
		logrus.WithError(err).Fatal("seed failed")
	}
	logrus.Info("seed completed")
}

// clean empties the tables children first so foreign keys hold.
func clean(db *gorm.DB) error {
	for _, table := range []string{"transactions", "penalties", "equipment", "suppliers", "categories", "customers"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

func seed(ctx context.Context, db *gorm.DB) error {
	customerRepo := repository.NewCustomerRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	txManager := repository.NewTxManager(db)

	customers := customer.NewService(customerRepo)
	shop := catalog.NewService(repository.NewCategoryRepository(db), equipmentRepo, repository.NewSupplierRepository(db), txManager)
	penalties := penalty.NewService(customerRepo, repository.NewPenaltyRepository(db), transactionRepo)
	processor := sales.NewService(customerRepo, equipmentRepo, transactionRepo, txManager, nil)

	// ================== CUSTOMERS ==================
	var registered []*domain.Customer
	for _, req := range []customer.RegisterRequest{
		{Name: "John Doe", Email: "john@example.com", Phone: "123-456-7890", Address: "123 Main St"},
		{Name: "Jane Smith", Email: "jane@example.com", Phone: "987-654-3210", Address: "456 Oak Ave"},
	} {
		c, err := customers.Register(ctx, req)
		if err != nil {
			return err
		}
		registered = append(registered, c)
	}

	// ================== CATALOG ==================
	categories := map[string]int64{}
	for _, name := range []string{"Football", "Basketball", "Tennis"} {
		c, err := shop.CreateCategory(ctx, name)
		if err != nil {
			return err
		}
		categories[name] = c.ID
	}

	type item struct {
		name     string
		category string
		quantity int
		price    string
	}
	var stocked []*domain.Equipment
	for _, it := range []item{
		{"Football", "Football", 100, "25.99"},
		{"Basketball", "Basketball", 50, "29.99"},
		{"Tennis Racket", "Tennis", 30, "79.99"},
	} {
		categoryID := categories[it.category]
		e, err := shop.AddEquipment(ctx, it.name, &categoryID, it.quantity, decimal.RequireFromString(it.price))
		if err != nil {
			return err
		}
		stocked = append(stocked, e)
	}

	for _, req := range []catalog.SupplierRequest{
		{Name: "Sports Supplies Co.", Contact: "Alice Johnson", Email: "alice@sportsupplies.com", Address: "789 Pine St"},
		{Name: "Athletic Gear Inc.", Contact: "Bob Brown", Email: "bob@athleticgear.com", Address: "321 Elm St"},
	} {
		if _, err := shop.CreateSupplier(ctx, req); err != nil {
			return err
		}
	}

	// ================== PENALTIES ==================
	if _, err := penalties.IssuePenalty(ctx, registered[0].ID, decimal.RequireFromString("10.00"), "Late return"); err != nil {
		return err
	}
	if _, err := penalties.IssuePenalty(ctx, registered[1].ID, decimal.RequireFromString("15.00"), "Damaged equipment"); err != nil {
		return err
	}

	// ================== SALES ==================
	if _, err := processor.ProcessTransaction(ctx, registered[0].ID, stocked[0].ID, 2); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"customers": len(registered),
		"equipment": len(stocked),
	}).Info("sample data loaded")
	return nil
}
