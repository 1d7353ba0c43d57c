package repositories

import (
	"flowbit-analytics/internal/models"

	"github.com/google/uuid"
)

// VendorRepositoryInterface defines the contract for vendor repository operations
type VendorRepositoryInterface interface {
	Create(vendor *models.Vendor) error
	CreateBatch(vendors []*models.Vendor) error
	GetByID(id uuid.UUID) (*models.Vendor, error)
	GetByName(name string) (*models.Vendor, error)
	GetAllWithInvoices() ([]models.Vendor, error)
	Count() (int64, error)
}

// InvoiceRepositoryInterface defines the contract for invoice repository operations
type InvoiceRepositoryInterface interface {
	Create(invoice *models.Invoice) error
	CreateBatch(invoices []*models.Invoice) error
	GetByID(id uuid.UUID) (*models.Invoice, error)
	GetAll() ([]models.Invoice, error)
	GetAllWithVendor() ([]models.Invoice, error)
	GetRecent(limit int) ([]models.Invoice, error)
	GetByStatus(status string, limit int) ([]models.Invoice, error)
	ListWithFilters(filters models.InvoiceFilters) ([]models.Invoice, error)
	Count() (int64, error)
}
