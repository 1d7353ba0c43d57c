package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sortQuery struct {
	Sort  string `validate:"omitempty,invoice_sort"`
	Order string `validate:"omitempty,sort_order"`
}

func TestInvoiceSortRule(t *testing.T) {
	v := NewValidator().GetValidate()

	assert.NoError(t, v.Struct(sortQuery{Sort: "amount", Order: "asc"}))
	assert.NoError(t, v.Struct(sortQuery{Sort: "invoice_date", Order: "DESC"}))
	assert.NoError(t, v.Struct(sortQuery{}))
	assert.Error(t, v.Struct(sortQuery{Sort: "vendor_name"}))
	assert.Error(t, v.Struct(sortQuery{Sort: "amount; DROP TABLE invoices"}))
	assert.Error(t, v.Struct(sortQuery{Order: "sideways"}))
}

func TestGetValidatorSingleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
