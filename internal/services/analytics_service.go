package services

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"flowbit-analytics/internal/models"
	"flowbit-analytics/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// topVendorLimit caps the vendor ranking.
	topVendorLimit = 10

	// unknownVendorSentinel is substituted when a grouped vendorId has
	// no matching vendor row. A referential gap must never crash an
	// aggregation.
	unknownVendorSentinel = "Unknown"
)

// Aggregation names used for logging and metrics labels.
const (
	aggSummaryStats  = "summary_stats"
	aggMonthlyTrend  = "monthly_trend"
	aggTopVendors    = "top_vendors"
	aggCategorySpend = "category_spend"
	aggCashOutflow   = "cash_outflow"
)

type analyticsService struct {
	invoiceRepo repositories.InvoiceRepositoryInterface
	vendorRepo  repositories.VendorRepositoryInterface
	metrics     MetricsRecorderInterface

	// nowFunc is replaceable in tests; cash outflow bucketing depends
	// on the current instant. All date arithmetic is UTC.
	nowFunc func() time.Time
}

// NewAnalyticsService creates a new AnalyticsServiceInterface instance
func NewAnalyticsService(
	invoiceRepo repositories.InvoiceRepositoryInterface,
	vendorRepo repositories.VendorRepositoryInterface,
	metrics MetricsRecorderInterface,
) AnalyticsServiceInterface {
	return &analyticsService{
		invoiceRepo: invoiceRepo,
		vendorRepo:  vendorRepo,
		metrics:     metrics,
		nowFunc:     func() time.Time { return time.Now().UTC() },
	}
}

// SummaryStats computes the headline dashboard figures from a full
// invoice snapshot plus the vendor count.
func (s *analyticsService) SummaryStats() (*models.SummaryStats, error) {
	started := time.Now()

	invoices, err := s.invoiceRepo.GetAll()
	if err != nil {
		return nil, s.fail(aggSummaryStats, err)
	}

	vendorCount, err := s.vendorRepo.Count()
	if err != nil {
		return nil, s.fail(aggSummaryStats, err)
	}

	stats := BuildSummaryStats(invoices, vendorCount)
	s.done(aggSummaryStats, len(invoices), started)

	return &stats, nil
}

// MonthlyTrend computes the sparse per-month spend series.
func (s *analyticsService) MonthlyTrend() ([]models.MonthlyTrend, error) {
	started := time.Now()

	invoices, err := s.invoiceRepo.GetAll()
	if err != nil {
		return nil, s.fail(aggMonthlyTrend, err)
	}

	trend := BuildMonthlyTrend(invoices)
	s.done(aggMonthlyTrend, len(invoices), started)

	return trend, nil
}

// TopVendors ranks vendors by summed invoice amount.
func (s *analyticsService) TopVendors() ([]models.VendorSpend, error) {
	started := time.Now()

	invoices, err := s.invoiceRepo.GetAllWithVendor()
	if err != nil {
		return nil, s.fail(aggTopVendors, err)
	}

	ranking := BuildTopVendors(invoices, topVendorLimit)
	s.done(aggTopVendors, len(invoices), started)

	return ranking, nil
}

// CategorySpend sums invoice amounts over the owning vendor's category.
func (s *analyticsService) CategorySpend() ([]models.CategorySpend, error) {
	started := time.Now()

	vendors, err := s.vendorRepo.GetAllWithInvoices()
	if err != nil {
		return nil, s.fail(aggCategorySpend, err)
	}

	spend := BuildCategorySpend(vendors)
	s.done(aggCategorySpend, len(vendors), started)

	return spend, nil
}

// CashOutflow buckets invoice amounts by days until due.
func (s *analyticsService) CashOutflow() ([]models.OutflowBucket, error) {
	started := time.Now()

	invoices, err := s.invoiceRepo.GetAll()
	if err != nil {
		return nil, s.fail(aggCashOutflow, err)
	}

	forecast := BuildCashOutflow(invoices, s.nowFunc())
	s.done(aggCashOutflow, len(invoices), started)

	return forecast, nil
}

func (s *analyticsService) fail(name string, err error) error {
	slog.Error("aggregation failed", "aggregation", name, "error", err)
	if s.metrics != nil {
		s.metrics.IncrementAggregation(name, "error")
	}
	return fmt.Errorf("%s aggregation: %w", name, err)
}

func (s *analyticsService) done(name string, rows int, started time.Time) {
	slog.Info("aggregation computed", "aggregation", name, "rows", rows)
	if s.metrics != nil {
		s.metrics.IncrementAggregation(name, "ok")
		s.metrics.RecordAggregationDuration(name, time.Since(started))
		s.metrics.RecordRowsScanned(name, rows)
	}
}

// BuildSummaryStats reduces an invoice snapshot to the headline totals.
// Empty input yields zeroes across the board, never nulls.
func BuildSummaryStats(invoices []models.Invoice, vendorCount int64) models.SummaryStats {
	totalSpend := decimal.Zero
	for i := range invoices {
		totalSpend = totalSpend.Add(invoices[i].Amount)
	}

	avg := decimal.Zero
	if len(invoices) > 0 {
		avg = totalSpend.DivRound(decimal.NewFromInt(int64(len(invoices))), 2)
	}

	return models.SummaryStats{
		TotalSpend:      totalSpend,
		TotalInvoices:   int64(len(invoices)),
		TotalVendors:    vendorCount,
		AvgInvoiceValue: avg,
	}
}

// BuildMonthlyTrend groups invoices by the calendar month of their
// invoice date (UTC) and sums per month. Months with no invoices are
// omitted; the "YYYY-MM" key sorts lexicographically into
// chronological order.
func BuildMonthlyTrend(invoices []models.Invoice) []models.MonthlyTrend {
	type monthAgg struct {
		totalSpend decimal.Decimal
		count      int64
	}

	byMonth := make(map[string]*monthAgg)
	for i := range invoices {
		key := invoices[i].MonthKey()
		agg, ok := byMonth[key]
		if !ok {
			agg = &monthAgg{totalSpend: decimal.Zero}
			byMonth[key] = agg
		}
		agg.totalSpend = agg.totalSpend.Add(invoices[i].Amount)
		agg.count++
	}

	keys := make([]string, 0, len(byMonth))
	for key := range byMonth {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	trend := make([]models.MonthlyTrend, 0, len(keys))
	for _, key := range keys {
		trend = append(trend, models.MonthlyTrend{
			Month:        key,
			TotalSpend:   byMonth[key].totalSpend,
			InvoiceCount: byMonth[key].count,
		})
	}

	return trend
}

// BuildTopVendors groups invoices by vendor, sums amounts, and returns
// at most limit rows sorted descending by spend. Equal sums keep their
// first-appearance order from the snapshot. An invoice whose vendor
// association did not resolve gets the sentinel name instead of
// failing.
func BuildTopVendors(invoices []models.Invoice, limit int) []models.VendorSpend {
	totals := make(map[uuid.UUID]decimal.Decimal)
	names := make(map[uuid.UUID]string)
	order := make([]uuid.UUID, 0)

	for i := range invoices {
		id := invoices[i].VendorID
		if _, seen := totals[id]; !seen {
			order = append(order, id)
			totals[id] = decimal.Zero
			names[id] = unknownVendorSentinel
		}
		totals[id] = totals[id].Add(invoices[i].Amount)
		if vendor := invoices[i].Vendor; vendor != nil && vendor.Name != "" {
			names[id] = vendor.Name
		}
	}

	ranking := make([]models.VendorSpend, 0, len(order))
	for _, id := range order {
		ranking = append(ranking, models.VendorSpend{
			Vendor:     names[id],
			TotalSpend: totals[id],
		})
	}

	sort.SliceStable(ranking, func(a, b int) bool {
		return ranking[a].TotalSpend.GreaterThan(ranking[b].TotalSpend)
	})

	if len(ranking) > limit {
		ranking = ranking[:limit]
	}

	return ranking
}

// BuildCategorySpend sums invoice amounts per distinct vendor category.
// Vendors without a category land in the "Unknown" bucket; vendors
// without invoices still contribute their category with zero spend.
// Categories keep their first-appearance order over the vendor set.
func BuildCategorySpend(vendors []models.Vendor) []models.CategorySpend {
	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)

	for i := range vendors {
		category := vendors[i].DisplayCategory()
		if _, seen := totals[category]; !seen {
			order = append(order, category)
			totals[category] = decimal.Zero
		}
		for j := range vendors[i].Invoices {
			totals[category] = totals[category].Add(vendors[i].Invoices[j].Amount)
		}
	}

	spend := make([]models.CategorySpend, 0, len(order))
	for _, category := range order {
		spend = append(spend, models.CategorySpend{
			Category: category,
			Value:    totals[category],
		})
	}

	return spend
}

// BuildCashOutflow buckets invoice amounts by the whole-day difference
// between due date and now (UTC, floored). diffDays <= 7 lands in the
// first bucket, which deliberately includes overdue invoices with
// negative diffs; then <= 30, <= 60, and everything later. All four
// buckets are always present, in fixed order, defaulting to zero.
func BuildCashOutflow(invoices []models.Invoice, now time.Time) []models.OutflowBucket {
	totals := map[string]decimal.Decimal{
		models.OutflowRangeWeek:      decimal.Zero,
		models.OutflowRangeMonth:     decimal.Zero,
		models.OutflowRangeTwoMonths: decimal.Zero,
		models.OutflowRangeLater:     decimal.Zero,
	}

	for i := range invoices {
		diffDays := int(math.Floor(invoices[i].DueDate.UTC().Sub(now.UTC()).Hours() / 24))

		var bucket string
		switch {
		case diffDays <= 7:
			bucket = models.OutflowRangeWeek
		case diffDays <= 30:
			bucket = models.OutflowRangeMonth
		case diffDays <= 60:
			bucket = models.OutflowRangeTwoMonths
		default:
			bucket = models.OutflowRangeLater
		}

		totals[bucket] = totals[bucket].Add(invoices[i].Amount)
	}

	forecast := make([]models.OutflowBucket, 0, len(models.OutflowRanges))
	for _, rangeLabel := range models.OutflowRanges {
		forecast = append(forecast, models.OutflowBucket{
			Range:  rangeLabel,
			Amount: totals[rangeLabel],
		})
	}

	return forecast
}
