package services

import (
	"fmt"
	"math/rand"
	"time"

	"flowbit-analytics/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	minInvoiceAmount = 50.00
	maxInvoiceAmount = 12000.00

	// Payment terms drawn for generated due dates, in days.
	minPaymentTermDays = 7
	maxPaymentTermDays = 90
)

// vendorCategories is the pool of categories assigned to generated
// vendors. "General" stays in the pool so seeded data exercises the
// default category path too.
var vendorCategories = []string{
	"IT Services",
	"Logistics",
	"Office Supplies",
	"Marketing",
	"Consulting",
	"Facilities",
	"Legal",
	"Travel",
	models.DefaultVendorCategory,
}

// invoiceStatuses carries the weighted status distribution for
// generated invoices: mostly processed, some pending, a few overdue.
var invoiceStatuses = []string{
	models.InvoiceStatusProcessed,
	models.InvoiceStatusProcessed,
	models.InvoiceStatusProcessed,
	models.InvoiceStatusPending,
	models.InvoiceStatusPending,
	models.InvoiceStatusOverdue,
}

type invoiceGenerator struct {
	faker *gofakeit.Faker
	rng   *rand.Rand
}

// NewInvoiceGenerator creates a new invoice generator
func NewInvoiceGenerator() InvoiceGeneratorInterface {
	seed := time.Now().UnixNano()
	return &invoiceGenerator{
		faker: gofakeit.New(seed),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// GenerateVendors produces count vendors with unique company names.
// Duplicate names from the faker are deduplicated with a numeric
// suffix so the unique constraint on vendors.name holds.
func (g *invoiceGenerator) GenerateVendors(count int) []*models.Vendor {
	vendors := make([]*models.Vendor, 0, count)
	seen := make(map[string]bool, count)

	for i := 0; i < count; i++ {
		name := g.faker.Company()
		if seen[name] {
			name = fmt.Sprintf("%s %d", name, i+1)
		}
		seen[name] = true

		vendors = append(vendors, &models.Vendor{
			ID:       uuid.New(),
			Name:     name,
			Category: vendorCategories[g.rng.Intn(len(vendorCategories))],
		})
	}

	return vendors
}

// GenerateInvoices produces count invoices spread over [from, to),
// each assigned to a random vendor from the given set. Due dates land
// a random payment term after the invoice date, so a slice of them
// falls into every cash outflow bucket.
func (g *invoiceGenerator) GenerateInvoices(vendors []*models.Vendor, count int, from, to time.Time) []*models.Invoice {
	if len(vendors) == 0 || count <= 0 {
		return []*models.Invoice{}
	}

	invoices := make([]*models.Invoice, 0, count)
	window := to.Sub(from)

	for i := 0; i < count; i++ {
		vendor := vendors[g.rng.Intn(len(vendors))]
		invoiceDate := from.Add(time.Duration(g.rng.Int63n(int64(window)))).UTC()
		termDays := minPaymentTermDays + g.rng.Intn(maxPaymentTermDays-minPaymentTermDays+1)

		invoices = append(invoices, &models.Invoice{
			ID:          uuid.New(),
			InvoiceNo:   fmt.Sprintf("INV-%04d-%06d", invoiceDate.Year(), g.rng.Intn(1000000)),
			InvoiceDate: invoiceDate,
			DueDate:     invoiceDate.Add(time.Duration(termDays) * 24 * time.Hour),
			Amount:      g.generateAmount(),
			Status:      invoiceStatuses[g.rng.Intn(len(invoiceStatuses))],
			VendorID:    vendor.ID,
		})
	}

	return invoices
}

func (g *invoiceGenerator) generateAmount() decimal.Decimal {
	amount := minInvoiceAmount + g.rng.Float64()*(maxInvoiceAmount-minInvoiceAmount)
	return decimal.NewFromFloat(amount).Round(2)
}
