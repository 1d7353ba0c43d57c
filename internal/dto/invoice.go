package dto

import (
	"github.com/shopspring/decimal"
)

// InvoiceListQuery contains the query parameters of the invoice listing
// endpoint. Sort and order are validated against the model whitelist.
type InvoiceListQuery struct {
	Search string `query:"search" json:"search"`
	Sort   string `query:"sort" json:"sort" validate:"omitempty,invoice_sort"`
	Order  string `query:"order" json:"order" validate:"omitempty,sort_order"`
}

// InvoiceRow is one flattened row of the invoice table: the vendor
// display name replaces the foreign key and the date is rendered as
// "YYYY-MM-DD" in UTC.
type InvoiceRow struct {
	Vendor    string          `json:"vendor"`
	Date      string          `json:"date"`
	InvoiceNo string          `json:"invoiceNo"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
}
