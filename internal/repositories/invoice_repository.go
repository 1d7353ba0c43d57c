package repositories

import (
	"errors"
	"fmt"
	"strings"

	"flowbit-analytics/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvoiceNotFound = errors.New("invoice not found")
)

// invoiceRepository implements InvoiceRepositoryInterface
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) InvoiceRepositoryInterface {
	return &invoiceRepository{
		db: db,
	}
}

// Create creates a new invoice
func (r *invoiceRepository) Create(invoice *models.Invoice) error {
	if err := r.db.Create(invoice).Error; err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	return nil
}

// CreateBatch creates multiple invoices in a single database transaction
func (r *invoiceRepository) CreateBatch(invoices []*models.Invoice) error {
	if len(invoices) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&invoices).Error; err != nil {
			return fmt.Errorf("failed to create batch invoices: %w", err)
		}
		return nil
	})
}

// GetByID retrieves an invoice by ID
func (r *invoiceRepository) GetByID(id uuid.UUID) (*models.Invoice, error) {
	invoice := &models.Invoice{}
	if err := r.db.First(invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return invoice, nil
}

// GetAll retrieves every invoice row without the vendor association.
// Aggregations that only need amounts and dates use this snapshot.
func (r *invoiceRepository) GetAll() ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := r.db.Order("created_at ASC").Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to get invoices: %w", err)
	}
	return invoices, nil
}

// GetAllWithVendor retrieves every invoice with its vendor preloaded
func (r *invoiceRepository) GetAllWithVendor() ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := r.db.Preload("Vendor").Order("created_at ASC").Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to get invoices with vendor: %w", err)
	}
	return invoices, nil
}

// GetRecent retrieves the most recently dated invoices with vendor preloaded
func (r *invoiceRepository) GetRecent(limit int) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := r.db.Preload("Vendor").
		Order("invoice_date DESC").
		Limit(limit).
		Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent invoices: %w", err)
	}
	return invoices, nil
}

// GetByStatus retrieves invoices matching a status label
func (r *invoiceRepository) GetByStatus(status string, limit int) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := r.db.Preload("Vendor").
		Where("status = ?", status).
		Order("due_date ASC").
		Limit(limit).
		Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to get invoices by status: %w", err)
	}
	return invoices, nil
}

// ListWithFilters retrieves invoices for the table view: optional
// case-insensitive substring search over invoice number, status and
// vendor name, a whitelisted sort column, and a hard row cap.
// LOWER(... LIKE ...) keeps matching case-insensitive on both postgres
// and the sqlite test driver.
func (r *invoiceRepository) ListWithFilters(filters models.InvoiceFilters) ([]models.Invoice, error) {
	filters.Normalize()

	query := r.db.Model(&models.Invoice{}).
		Joins("LEFT JOIN vendors ON vendors.id = invoices.vendor_id").
		Preload("Vendor")

	if filters.Search != "" {
		pattern := "%" + strings.ToLower(filters.Search) + "%"
		query = query.Where(
			"LOWER(invoices.invoice_no) LIKE ? OR LOWER(invoices.status) LIKE ? OR LOWER(vendors.name) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var invoices []models.Invoice
	if err := query.
		Order(fmt.Sprintf("invoices.%s %s", filters.SortBy, strings.ToUpper(filters.Order))).
		Limit(models.InvoiceListLimit).
		Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	return invoices, nil
}

// Count returns the number of invoice rows
func (r *invoiceRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Invoice{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count invoices: %w", err)
	}
	return count, nil
}
