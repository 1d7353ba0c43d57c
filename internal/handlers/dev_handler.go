package handlers

import (
	"fmt"
	"net/http"
	"time"

	"flowbit-analytics/internal/dto"
	apierrors "flowbit-analytics/internal/errors"
	"flowbit-analytics/internal/repositories"
	"flowbit-analytics/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultSeedVendors  = 20
	defaultSeedInvoices = 200
	maxSeedVendors      = 200
	maxSeedInvoices     = 5000

	// seedHistoryMonths is how far back generated invoice dates reach.
	seedHistoryMonths = 6
)

// DevHandler handles development-only endpoints. The route is only
// registered when the server runs in the development environment.
type DevHandler struct {
	vendorRepo  repositories.VendorRepositoryInterface
	invoiceRepo repositories.InvoiceRepositoryInterface
	generator   services.InvoiceGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	vendorRepo repositories.VendorRepositoryInterface,
	invoiceRepo repositories.InvoiceRepositoryInterface,
) *DevHandler {
	return &DevHandler{
		vendorRepo:  vendorRepo,
		invoiceRepo: invoiceRepo,
		generator:   services.NewInvoiceGenerator(),
	}
}

// SeedData populates the store with generated vendors and invoices
//
// Method: POST /api/dev/seed
// Environment: Development only
//
// Query parameters:
//   - vendors: Number of vendors to generate (default: 20, max: 200)
//   - invoices: Number of invoices to generate (default: 200, max: 5000)
//
// Invoice dates are spread over the trailing six months; due dates
// extend past today so every cash outflow bucket gets populated.
//
// Success Response: 200 OK
//   - message: Success message
//   - vendors_created: Number of vendors created
//   - invoices_created: Number of invoices created
//
// Error Responses:
//   - 500: Internal server error
func (h *DevHandler) SeedData(c echo.Context) error {
	vendorCount := clampSeedParam(getIntQueryParam(c, "vendors", defaultSeedVendors), maxSeedVendors)
	invoiceCount := clampSeedParam(getIntQueryParam(c, "invoices", defaultSeedInvoices), maxSeedInvoices)

	vendors := h.generator.GenerateVendors(vendorCount)
	if err := h.vendorRepo.CreateBatch(vendors); err != nil {
		return SendError(c, apierrors.SystemDatabaseError)
	}

	now := time.Now().UTC()
	from := now.AddDate(0, -seedHistoryMonths, 0)

	invoices := h.generator.GenerateInvoices(vendors, invoiceCount, from, now)
	if err := h.invoiceRepo.CreateBatch(invoices); err != nil {
		return SendError(c, apierrors.SystemDatabaseError)
	}

	return c.JSON(http.StatusOK, dto.SeedResponse{
		Message:         "seed data generated successfully",
		VendorsCreated:  len(vendors),
		InvoicesCreated: len(invoices),
	})
}

func clampSeedParam(value, max int) int {
	if value < 1 {
		return 1
	}
	if value > max {
		return max
	}
	return value
}

// Helper function to get integer query parameters
func getIntQueryParam(c echo.Context, key string, defaultValue int) int {
	valueStr := c.QueryParam(key)
	if valueStr == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(valueStr, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}
