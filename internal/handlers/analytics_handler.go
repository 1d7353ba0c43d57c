package handlers

import (
	"net/http"

	"flowbit-analytics/internal/services"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler serves the dashboard aggregation endpoints. Every
// endpoint recomputes from the current store; there is no caching
// layer between the database and the response.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService services.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GetStats returns the headline dashboard totals
//
// Method: GET /api/stats
//
// Success Response: 200 OK
//   - totalSpend: Decimal sum over all invoices
//   - totalInvoices: Integer invoice count
//   - totalVendors: Integer vendor count
//   - avgInvoiceValue: Decimal mean invoice amount
//
// Error Responses:
//   - 500: Internal server error
func (h *AnalyticsHandler) GetStats(c echo.Context) error {
	stats, err := h.analyticsService.SummaryStats()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}

// GetInvoiceTrends returns monthly spend totals sorted ascending
//
// Method: GET /api/invoice-trends
//
// Success Response: 200 OK
//   - Array of {month, totalSpend, invoiceCount}, sparse over months
//
// Error Responses:
//   - 500: Internal server error
func (h *AnalyticsHandler) GetInvoiceTrends(c echo.Context) error {
	trend, err := h.analyticsService.MonthlyTrend()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, trend)
}

// GetTopVendors returns up to ten vendors ranked by total spend
//
// Method: GET /api/vendors/top10
//
// Success Response: 200 OK
//   - Array of {vendor, totalSpend} sorted descending
//
// Error Responses:
//   - 500: Internal server error
func (h *AnalyticsHandler) GetTopVendors(c echo.Context) error {
	ranking, err := h.analyticsService.TopVendors()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, ranking)
}

// GetCategorySpend returns spend totals grouped by vendor category
//
// Method: GET /api/category-spend
//
// Success Response: 200 OK
//   - Array of {category, value}, one row per distinct category
//
// Error Responses:
//   - 500: Internal server error
func (h *AnalyticsHandler) GetCategorySpend(c echo.Context) error {
	spend, err := h.analyticsService.CategorySpend()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, spend)
}

// GetCashOutflow returns amounts bucketed by days until due
//
// Method: GET /api/cash-outflow
//
// Success Response: 200 OK
//   - Array of exactly four {range, amount} rows in fixed order
//
// Error Responses:
//   - 500: Internal server error
func (h *AnalyticsHandler) GetCashOutflow(c echo.Context) error {
	forecast, err := h.analyticsService.CashOutflow()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, forecast)
}
