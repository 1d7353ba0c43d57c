package services

import (
	"fmt"
	"log/slog"
	"time"

	"flowbit-analytics/internal/dto"
	"flowbit-analytics/internal/models"
	"flowbit-analytics/internal/repositories"
)

// invoiceDateLayout is the wire format for invoice dates in list rows.
const invoiceDateLayout = "2006-01-02"

type invoiceService struct {
	invoiceRepo repositories.InvoiceRepositoryInterface
	metrics     MetricsRecorderInterface
}

// NewInvoiceService creates a new InvoiceServiceInterface instance
func NewInvoiceService(
	invoiceRepo repositories.InvoiceRepositoryInterface,
	metrics MetricsRecorderInterface,
) InvoiceServiceInterface {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		metrics:     metrics,
	}
}

// ListInvoices returns the flattened table rows for the invoice view.
// The handler validates sort and order against the whitelist; the
// repository still discards anything unexpected before it reaches the
// SQL text. The search term is matched case-insensitively against
// invoice number, status and vendor name.
func (s *invoiceService) ListInvoices(query dto.InvoiceListQuery) ([]dto.InvoiceRow, error) {
	started := time.Now()

	filters := models.InvoiceFilters{
		Search: query.Search,
		SortBy: query.Sort,
		Order:  query.Order,
	}

	invoices, err := s.invoiceRepo.ListWithFilters(filters)
	if err != nil {
		slog.Error("invoice listing failed", "search", query.Search, "error", err)
		if s.metrics != nil {
			s.metrics.IncrementAggregation("invoice_list", "error")
		}
		return nil, fmt.Errorf("invoice listing: %w", err)
	}

	rows := make([]dto.InvoiceRow, 0, len(invoices))
	for i := range invoices {
		rows = append(rows, FlattenInvoice(&invoices[i]))
	}

	slog.Info("invoices listed", "rows", len(rows), "search", query.Search)
	if s.metrics != nil {
		s.metrics.IncrementAggregation("invoice_list", "ok")
		s.metrics.RecordAggregationDuration("invoice_list", time.Since(started))
		s.metrics.RecordRowsScanned("invoice_list", len(rows))
	}

	return rows, nil
}

// FlattenInvoice projects an invoice row onto the table view shape.
// A missing vendor association becomes the "Unknown Vendor" sentinel.
func FlattenInvoice(invoice *models.Invoice) dto.InvoiceRow {
	return dto.InvoiceRow{
		Vendor:    invoice.VendorName(),
		Date:      invoice.InvoiceDate.UTC().Format(invoiceDateLayout),
		InvoiceNo: invoice.InvoiceNo,
		Amount:    invoice.Amount,
		Status:    invoice.Status,
	}
}
