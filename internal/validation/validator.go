package validation

import (
	"reflect"
	"strings"

	"flowbit-analytics/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("invoice_sort", validateInvoiceSort)
	_ = v.RegisterValidation("sort_order", validateSortOrder)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateInvoiceSort validates that a sort field is in the listing whitelist
func validateInvoiceSort(fl validator.FieldLevel) bool {
	return models.IsValidInvoiceSortField(fl.Field().String())
}

// validateSortOrder validates that a sort order is asc or desc
func validateSortOrder(fl validator.FieldLevel) bool {
	order := strings.ToLower(fl.Field().String())
	return order == models.SortOrderAsc || order == models.SortOrderDesc
}
