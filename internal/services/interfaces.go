package services

import (
	"time"

	"flowbit-analytics/internal/dto"
	"flowbit-analytics/internal/models"
)

// AnalyticsServiceInterface exposes the dashboard aggregations. Every
// method takes a single consistent snapshot of the store and reduces
// it with a pure function; nothing here mutates state.
type AnalyticsServiceInterface interface {
	// SummaryStats returns the headline totals. All fields are zero,
	// never null, when the store is empty.
	SummaryStats() (*models.SummaryStats, error)

	// MonthlyTrend returns the sparse per-month spend series sorted
	// ascending by "YYYY-MM" key.
	MonthlyTrend() ([]models.MonthlyTrend, error)

	// TopVendors returns at most ten vendors ranked by total spend,
	// descending, ties broken by query order.
	TopVendors() ([]models.VendorSpend, error)

	// CategorySpend returns one row per distinct vendor category.
	CategorySpend() ([]models.CategorySpend, error)

	// CashOutflow buckets unpaid amounts by days until due. Always
	// exactly four rows in fixed order.
	CashOutflow() ([]models.OutflowBucket, error)
}

// InvoiceServiceInterface exposes the flattened invoice table view
type InvoiceServiceInterface interface {
	ListInvoices(query dto.InvoiceListQuery) ([]dto.InvoiceRow, error)
}

// ChatServiceInterface maps a free-text query to a canned aggregation.
// This is substring matching against an ordered trigger table, not
// intent classification.
type ChatServiceInterface interface {
	Ask(query string) (*dto.ChatResponse, error)
}

// InvoiceGeneratorInterface produces realistic vendor and invoice rows
// for development seeding and tests.
type InvoiceGeneratorInterface interface {
	GenerateVendors(count int) []*models.Vendor
	GenerateInvoices(vendors []*models.Vendor, count int, from, to time.Time) []*models.Invoice
}

// MetricsRecorderInterface records aggregation telemetry
type MetricsRecorderInterface interface {
	IncrementAggregation(name string, outcome string)
	RecordAggregationDuration(name string, duration time.Duration)
	RecordRowsScanned(name string, rows int)
}
