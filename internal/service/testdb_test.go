package service

import (
	"testing"

	"go-pos-ws/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing. The pool is
// capped at one connection so every goroutine sees the same database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.Product{}, &model.Sale{}, &model.SaleItem{}, &model.User{}, &model.Setting{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createTestProduct(t *testing.T, db *gorm.DB, sku string, stock float64) *model.Product {
	t.Helper()

	product := &model.Product{
		SKU:       sku,
		Name:      "Product " + sku,
		Stock:     stock,
		Unit:      "pack",
		UnitPrice: 5,
		CostPrice: 2,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to create test product: %v", err)
	}
	return product
}

func productStock(t *testing.T, db *gorm.DB, id string) float64 {
	t.Helper()

	var product model.Product
	if err := db.First(&product, "id = ?", id).Error; err != nil {
		t.Fatalf("failed to load product %s: %v", id, err)
	}
	return product.Stock
}

func countRows(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()

	var count int64
	if err := db.Model(m).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}
