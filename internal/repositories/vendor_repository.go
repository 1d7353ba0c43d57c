package repositories

import (
	"errors"
	"fmt"

	"flowbit-analytics/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrVendorNotFound = errors.New("vendor not found")
)

// vendorRepository implements VendorRepositoryInterface
type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository creates a new vendor repository
func NewVendorRepository(db *gorm.DB) VendorRepositoryInterface {
	return &vendorRepository{
		db: db,
	}
}

// Create creates a new vendor
func (r *vendorRepository) Create(vendor *models.Vendor) error {
	if err := r.db.Create(vendor).Error; err != nil {
		return fmt.Errorf("failed to create vendor: %w", err)
	}
	return nil
}

// CreateBatch creates multiple vendors in a single database transaction
func (r *vendorRepository) CreateBatch(vendors []*models.Vendor) error {
	if len(vendors) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&vendors).Error; err != nil {
			return fmt.Errorf("failed to create batch vendors: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a vendor by ID
func (r *vendorRepository) GetByID(id uuid.UUID) (*models.Vendor, error) {
	vendor := &models.Vendor{}
	if err := r.db.First(vendor, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, fmt.Errorf("failed to get vendor: %w", err)
	}
	return vendor, nil
}

// GetByName retrieves a vendor by its unique name
func (r *vendorRepository) GetByName(name string) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.Where("name = ?", name).First(&vendor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, fmt.Errorf("failed to get vendor by name: %w", err)
	}
	return &vendor, nil
}

// GetAllWithInvoices retrieves all vendors with their invoices preloaded.
// Vendors with no invoices are included; category spend needs them.
func (r *vendorRepository) GetAllWithInvoices() ([]models.Vendor, error) {
	var vendors []models.Vendor
	if err := r.db.Preload("Invoices").Order("created_at ASC").Find(&vendors).Error; err != nil {
		return nil, fmt.Errorf("failed to get vendors with invoices: %w", err)
	}
	return vendors, nil
}

// Count returns the number of vendor rows
func (r *vendorRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Vendor{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count vendors: %w", err)
	}
	return count, nil
}
