package models

// Sortable invoice columns exposed through the listing endpoint. The
// whitelist keeps caller-supplied sort fields out of the SQL text.
const (
	InvoiceSortDate      = "invoice_date"
	InvoiceSortDueDate   = "due_date"
	InvoiceSortNumber    = "invoice_no"
	InvoiceSortAmount    = "amount"
	InvoiceSortStatus    = "status"
	InvoiceSortCreatedAt = "created_at"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"

	// InvoiceListLimit caps every listing query.
	InvoiceListLimit = 100
)

// InvoiceFilters contains filtering options for invoice listing queries
type InvoiceFilters struct {
	Search string
	SortBy string
	Order  string
}

// IsValidInvoiceSortField reports whether the field may be sorted on.
func IsValidInvoiceSortField(field string) bool {
	switch field {
	case InvoiceSortDate, InvoiceSortDueDate, InvoiceSortNumber,
		InvoiceSortAmount, InvoiceSortStatus, InvoiceSortCreatedAt:
		return true
	default:
		return false
	}
}

// Normalize fills defaults and discards unknown sort fields or orders.
func (f *InvoiceFilters) Normalize() {
	if !IsValidInvoiceSortField(f.SortBy) {
		f.SortBy = InvoiceSortDate
	}
	if f.Order != SortOrderAsc && f.Order != SortOrderDesc {
		f.Order = SortOrderDesc
	}
}
