package services

import (
	"testing"
	"time"

	"flowbit-analytics/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// InvoiceGeneratorTestSuite defines the test suite for InvoiceGenerator
type InvoiceGeneratorTestSuite struct {
	suite.Suite
	generator InvoiceGeneratorInterface
}

// SetupTest runs before each test
func (s *InvoiceGeneratorTestSuite) SetupTest() {
	s.generator = NewInvoiceGenerator()
}

// TestInvoiceGeneratorSuite runs the test suite
func TestInvoiceGeneratorSuite(t *testing.T) {
	suite.Run(t, new(InvoiceGeneratorTestSuite))
}

func (s *InvoiceGeneratorTestSuite) TestGenerateVendors_UniqueNames() {
	vendors := s.generator.GenerateVendors(50)

	s.Len(vendors, 50)

	seen := make(map[string]bool, len(vendors))
	for _, vendor := range vendors {
		s.NotEqual(uuid.Nil, vendor.ID)
		s.NotEmpty(vendor.Name)
		s.NotEmpty(vendor.Category)
		s.False(seen[vendor.Name], "duplicate vendor name %q", vendor.Name)
		seen[vendor.Name] = true
	}
}

func (s *InvoiceGeneratorTestSuite) TestGenerateInvoices_WithinWindow() {
	vendors := s.generator.GenerateVendors(5)
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	invoices := s.generator.GenerateInvoices(vendors, 100, from, to)

	s.Len(invoices, 100)

	vendorIDs := make(map[uuid.UUID]bool, len(vendors))
	for _, vendor := range vendors {
		vendorIDs[vendor.ID] = true
	}

	for _, invoice := range invoices {
		s.True(vendorIDs[invoice.VendorID])
		s.NotEmpty(invoice.InvoiceNo)
		s.False(invoice.InvoiceDate.Before(from))
		s.True(invoice.InvoiceDate.Before(to))
		s.True(invoice.DueDate.After(invoice.InvoiceDate))
		s.False(invoice.Amount.IsNegative())
		s.Contains([]string{
			models.InvoiceStatusProcessed,
			models.InvoiceStatusPending,
			models.InvoiceStatusOverdue,
		}, invoice.Status)
	}
}

func (s *InvoiceGeneratorTestSuite) TestGenerateInvoices_NoVendors() {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 6, 0)

	invoices := s.generator.GenerateInvoices(nil, 10, from, to)

	s.Empty(invoices)
}
