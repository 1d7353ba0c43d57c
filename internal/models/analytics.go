package models

import "github.com/shopspring/decimal"

// SummaryStats contains the headline dashboard figures. Numeric fields
// default to zero, never null, when the store holds no rows.
type SummaryStats struct {
	TotalSpend      decimal.Decimal `json:"totalSpend"`
	TotalInvoices   int64           `json:"totalInvoices"`
	TotalVendors    int64           `json:"totalVendors"`
	AvgInvoiceValue decimal.Decimal `json:"avgInvoiceValue"`
}

// MonthlyTrend is one point of the per-month spend series. Month is a
// "YYYY-MM" key; lexicographic order over the key is chronological.
type MonthlyTrend struct {
	Month        string          `json:"month"`
	TotalSpend   decimal.Decimal `json:"totalSpend"`
	InvoiceCount int64           `json:"invoiceCount"`
}

// VendorSpend is one row of the top-vendor ranking.
type VendorSpend struct {
	Vendor     string          `json:"vendor"`
	TotalSpend decimal.Decimal `json:"totalSpend"`
}

// CategorySpend aggregates invoice amounts over the owning vendor's
// category attribute.
type CategorySpend struct {
	Category string          `json:"category"`
	Value    decimal.Decimal `json:"value"`
}

// OutflowBucket is one of the four fixed aging ranges of the cash
// outflow forecast.
type OutflowBucket struct {
	Range  string          `json:"range"`
	Amount decimal.Decimal `json:"amount"`
}

// Fixed cash-outflow bucket labels, in response order.
const (
	OutflowRangeWeek      = "0–7 days"
	OutflowRangeMonth     = "8–30 days"
	OutflowRangeTwoMonths = "31–60 days"
	OutflowRangeLater     = "60+ days"
)

// OutflowRanges lists the bucket labels in the order every forecast
// response must present them.
var OutflowRanges = []string{
	OutflowRangeWeek,
	OutflowRangeMonth,
	OutflowRangeTwoMonths,
	OutflowRangeLater,
}
