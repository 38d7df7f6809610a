// Package dbtest opens throwaway databases for package tests.
package dbtest

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sportsinventory/internal/database"
)

// Open returns a migrated in-memory SQLite database private to t.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:inventory_test_%s?mode=memory&cache=shared", name)
	db, err := database.ConnectWithConfig(dsn, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// PostgresEnv names the DSN of a disposable PostgreSQL database for tests
// that need real row locks.
const PostgresEnv = "TEST_DATABASE_URL"

const inventoryTables = "transactions, penalties, equipment, suppliers, categories, customers"

// OpenPostgres returns the migrated, emptied database named by PostgresEnv,
// or skips t when it is unset. Tables are emptied again on cleanup.
func OpenPostgres(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := os.Getenv(PostgresEnv)
	if dsn == "" {
		t.Skipf("%s not set", PostgresEnv)
	}
	if !database.IsPostgres(dsn) {
		t.Fatalf("%s must be a postgres:// DSN", PostgresEnv)
	}

	db, err := database.ConnectWithConfig(dsn, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open postgres db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}

	truncate := func() error {
		return db.Exec("TRUNCATE " + inventoryTables + " RESTART IDENTITY CASCADE").Error
	}
	if err := truncate(); err != nil {
		t.Fatalf("failed to empty db: %v", err)
	}
	t.Cleanup(func() {
		_ = truncate()
		_ = database.Close(db)
	})
	return db
}
