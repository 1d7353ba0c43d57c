package errors

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Validation General",
			code:     ValidationGeneral,
			expected: "Validation failed",
		},
		{
			name:     "Chat Missing Query",
			code:     ChatMissingQuery,
			expected: "Missing query",
		},
		{
			name:     "Vendor Not Found",
			code:     VendorNotFound,
			expected: "Vendor not found",
		},
		{
			name:     "Invoice Not Found",
			code:     InvoiceNotFound,
			expected: "Invoice not found",
		},
		{
			name:     "System Internal Error",
			code:     SystemInternalError,
			expected: "Internal Server Error",
		},
		{
			name:     "System Database Error",
			code:     SystemDatabaseError,
			expected: "Internal Server Error",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			message := GetErrorMessage(tc.code)
			s.Equal(tc.expected, message)
		})
	}
}

// TestGetErrorMessage_UnknownCode tests the fallback message for unregistered codes
func (s *CodesTestSuite) TestGetErrorMessage_UnknownCode() {
	message := GetErrorMessage(ErrorCode("BOGUS_999"))
	s.Equal("An error occurred", message)
}

// TestIsValidErrorCode tests error code registration checks
func (s *CodesTestSuite) TestIsValidErrorCode() {
	s.True(IsValidErrorCode(SystemInternalError))
	s.True(IsValidErrorCode(ChatMissingQuery))
	s.False(IsValidErrorCode(ErrorCode("BOGUS_999")))
	s.False(IsValidErrorCode(ErrorCode("")))
}
