package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

// TestNewErrorResponse_BasicUsage tests creating a basic error response
func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(VendorNotFound, s.traceID)

	s.NotNil(response)
	s.Equal("VENDOR_001", response.Code)
	s.Equal("Vendor not found", response.Message)
	s.Equal(s.traceID, response.TraceID)
	s.Empty(response.Details)
}

// TestNewErrorResponse_WithDetails tests creating error response with details
func (s *ResponseTestSuite) TestNewErrorResponse_WithDetails() {
	details := []string{"sort must be one of the invoice columns"}
	response := NewErrorResponse(ValidationInvalidSort, s.traceID, WithDetails(details...))

	s.NotNil(response)
	s.Equal("VALIDATION_004", response.Code)
	s.Equal("Invalid sort field or order", response.Message)
	s.Equal(details, response.Details)
}

// TestNewErrorResponse_WithCustomMessage tests overriding the default message
func (s *ResponseTestSuite) TestNewErrorResponse_WithCustomMessage() {
	response := NewErrorResponse(ValidationGeneral, s.traceID, WithMessage("query is required"))

	s.NotNil(response)
	s.Equal("VALIDATION_001", response.Code)
	s.Equal("query is required", response.Message)
}

// TestWrapSystemError_HidesInternalDetail tests that store errors never leak
func (s *ResponseTestSuite) TestWrapSystemError_HidesInternalDetail() {
	internal := errors.New("pq: connection refused on host db:5432")
	response, returned := WrapSystemError(internal, s.traceID)

	s.Equal(internal, returned)
	s.Equal("Internal Server Error", response.Message)
	s.Equal("SYSTEM_001", response.Code)
	s.NotContains(response.Message, "pq:")
}

// TestToJSON_WireContract tests the exact JSON shape the frontend consumes
func (s *ResponseTestSuite) TestToJSON_WireContract() {
	response, _ := WrapSystemError(errors.New("boom"), s.traceID)

	data, err := response.ToJSON()
	s.NoError(err)

	var decoded map[string]interface{}
	s.NoError(json.Unmarshal(data, &decoded))
	s.Equal("Internal Server Error", decoded["error"])
	s.Equal("SYSTEM_001", decoded["code"])
}

// TestGetHTTPStatus tests code to HTTP status mapping
func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ChatMissingQuery, http.StatusBadRequest},
		{VendorNotFound, http.StatusNotFound},
		{InvoiceNotFound, http.StatusNotFound},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{ErrorCode("BOGUS_999"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, GetHTTPStatus(tc.code), "code %s", tc.code)
	}
}

// TestIsClientError_IsServerError tests error class helpers
func (s *ResponseTestSuite) TestIsClientError_IsServerError() {
	clientErr := NewErrorResponse(ChatMissingQuery, s.traceID)
	s.True(clientErr.IsClientError())
	s.False(clientErr.IsServerError())

	serverErr := NewErrorResponse(SystemDatabaseError, s.traceID)
	s.False(serverErr.IsClientError())
	s.True(serverErr.IsServerError())
}

// TestNewValidationError tests field error aggregation
func (s *ResponseTestSuite) TestNewValidationError() {
	response := NewValidationError(map[string]string{"Query": "is required"}, s.traceID)

	s.Equal("VALIDATION_001", response.Code)
	s.Len(response.Details, 1)
	s.Contains(response.Details[0], "Query")
}
