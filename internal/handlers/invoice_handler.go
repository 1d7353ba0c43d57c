package handlers

import (
	"net/http"

	"flowbit-analytics/internal/dto"
	apierrors "flowbit-analytics/internal/errors"
	"flowbit-analytics/internal/services"

	"github.com/labstack/echo/v4"
)

// InvoiceHandler serves the invoice table view
type InvoiceHandler struct {
	invoiceService services.InvoiceServiceInterface
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService services.InvoiceServiceInterface) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

// ListInvoices returns flattened invoice rows for the table view
//
// Method: GET /api/invoices
//
// Query parameters:
//   - search: Case-insensitive substring matched against invoice
//     number, status and vendor name (optional)
//   - sort: Sort column, one of invoice_date, due_date, invoice_no,
//     amount, status, created_at (optional, default invoice_date)
//   - order: "asc" or "desc" (optional, default desc)
//
// At most 100 rows are returned.
//
// Success Response: 200 OK
//   - Array of {vendor, date, invoiceNo, amount, status}
//
// Error Responses:
//   - 400: Unknown sort column or order
//   - 500: Internal server error
func (h *InvoiceHandler) ListInvoices(c echo.Context) error {
	var query dto.InvoiceListQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid query parameters"))
	}

	if err := c.Validate(&query); err != nil {
		return err
	}

	rows, err := h.invoiceService.ListInvoices(query)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, rows)
}
