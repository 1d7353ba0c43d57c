package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	InvoiceStatusProcessed = "Processed"
	InvoiceStatusPending   = "Pending"
	InvoiceStatusOverdue   = "Overdue"
)

var (
	ErrInvoiceVendorRequired = errors.New("invoice vendor reference is required")
	ErrNegativeInvoiceAmount = errors.New("invoice amount must not be negative")
)

// Invoice represents a single billable document issued by a vendor.
// Rows are created by the ingestion process; the analytics layer only
// ever reads them.
type Invoice struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNo   string          `gorm:"type:varchar(100);not null;index" json:"invoice_no"`
	InvoiceDate time.Time       `gorm:"not null;index" json:"invoice_date"`
	DueDate     time.Time       `gorm:"not null;index" json:"due_date"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Status      string          `gorm:"type:varchar(50);not null;default:'Processed'" json:"status"`
	VendorID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"vendor_id"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Vendor *Vendor `gorm:"foreignKey:VendorID" json:"-"`
}

// BeforeCreate hook for Invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}

	if i.Status == "" {
		i.Status = InvoiceStatusProcessed
	}

	now := time.Now().UTC()
	if i.InvoiceDate.IsZero() {
		i.InvoiceDate = now
	}
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	if i.UpdatedAt.IsZero() {
		i.UpdatedAt = now
	}

	return i.Validate()
}

// Validate validates the invoice fields
func (i *Invoice) Validate() error {
	if i.VendorID == uuid.Nil {
		return ErrInvoiceVendorRequired
	}

	if i.Amount.IsNegative() {
		return ErrNegativeInvoiceAmount
	}

	return nil
}

// VendorName resolves the display name of the owning vendor, falling
// back to the sentinel when the association did not load.
func (i *Invoice) VendorName() string {
	if i.Vendor == nil || i.Vendor.Name == "" {
		return UnknownVendorName
	}
	return i.Vendor.Name
}

// MonthKey returns the calendar month of the invoice date as "YYYY-MM".
// Bucketing is done in UTC so results do not depend on server locale.
func (i *Invoice) MonthKey() string {
	return i.InvoiceDate.UTC().Format("2006-01")
}

// TableName returns the table name for Invoice
func (i *Invoice) TableName() string {
	return "invoices"
}
