package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidSort   ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Chat error codes (CHAT_*)
const (
	ChatMissingQuery ErrorCode = "CHAT_001"
)

// Vendor error codes (VENDOR_*)
const (
	VendorNotFound ErrorCode = "VENDOR_001"
)

// Invoice error codes (INVOICE_*)
const (
	InvoiceNotFound ErrorCode = "INVOICE_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidSort:   "Invalid sort field or order",
	ValidationInvalidDate:   "Invalid date format or range",

	// Chat errors
	ChatMissingQuery: "Missing query",

	// Vendor errors
	VendorNotFound: "Vendor not found",

	// Invoice errors
	InvoiceNotFound: "Invoice not found",

	// System errors. Every unhandled store failure surfaces as the
	// generic "Internal Server Error" payload; internal detail never
	// leaks to the caller.
	SystemInternalError:      "Internal Server Error",
	SystemDatabaseError:      "Internal Server Error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "Internal Server Error",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
