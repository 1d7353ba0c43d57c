package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// DefaultVendorCategory is assigned when the ingestion feed carries no category.
	DefaultVendorCategory = "General"

	// UnknownCategory is the aggregation-side bucket for vendors whose
	// category column is empty.
	UnknownCategory = "Unknown"

	// UnknownVendorName is the sentinel used when an invoice references a
	// vendor row that cannot be resolved.
	UnknownVendorName = "Unknown Vendor"
)

var (
	ErrVendorNameRequired = errors.New("vendor name is required")
)

// Vendor represents a billing counterparty that issues invoices.
type Vendor struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Category  string    `gorm:"type:varchar(255)" json:"category"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Invoices []Invoice `gorm:"foreignKey:VendorID" json:"-"`
}

// BeforeCreate hook for Vendor
func (v *Vendor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}

	if v.Category == "" {
		v.Category = DefaultVendorCategory
	}

	now := time.Now().UTC()
	if v.CreatedAt.IsZero() {
		v.CreatedAt = now
	}
	if v.UpdatedAt.IsZero() {
		v.UpdatedAt = now
	}

	return v.Validate()
}

// Validate validates the vendor fields
func (v *Vendor) Validate() error {
	if v.Name == "" {
		return ErrVendorNameRequired
	}
	return nil
}

// DisplayCategory returns the category used by spend aggregations,
// mapping an empty column to the "Unknown" bucket.
func (v *Vendor) DisplayCategory() string {
	if v.Category == "" {
		return UnknownCategory
	}
	return v.Category
}

// TableName returns the table name for Vendor
func (v *Vendor) TableName() string {
	return "vendors"
}
