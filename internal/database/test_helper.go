package database

import (
	"fmt"
	"testing"
	"time"

	"flowbit-analytics/internal/config"
	"flowbit-analytics/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestVendor(t *testing.T, db *DB, name, category string) *models.Vendor {
	t.Helper()

	vendor := &models.Vendor{
		Name:     name,
		Category: category,
	}

	if err := db.Create(vendor).Error; err != nil {
		t.Fatalf("failed to create test vendor: %v", err)
	}

	return vendor
}

func CreateTestInvoice(t *testing.T, db *DB, vendor *models.Vendor, invoiceNo string, amount float64, invoiceDate, dueDate time.Time) *models.Invoice {
	t.Helper()

	invoice := &models.Invoice{
		InvoiceNo:   invoiceNo,
		InvoiceDate: invoiceDate,
		DueDate:     dueDate,
		Amount:      decimal.NewFromFloat(amount),
		Status:      models.InvoiceStatusProcessed,
		VendorID:    vendor.ID,
	}

	if err := db.Create(invoice).Error; err != nil {
		t.Fatalf("failed to create test invoice: %v", err)
	}

	return invoice
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"invoices",
		"vendors",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
