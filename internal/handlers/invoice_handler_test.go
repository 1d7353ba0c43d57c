package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"flowbit-analytics/internal/dto"
	"flowbit-analytics/internal/models"
	"flowbit-analytics/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type InvoiceHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	echo               *echo.Echo
	mockInvoiceService *service_mocks.MockInvoiceServiceInterface
	handler            *InvoiceHandler
}

func TestInvoiceHandlerSuite(t *testing.T) {
	suite.Run(t, new(InvoiceHandlerTestSuite))
}

func (s *InvoiceHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.mockInvoiceService = service_mocks.NewMockInvoiceServiceInterface(s.ctrl)
	s.handler = NewInvoiceHandler(s.mockInvoiceService)
}

func (s *InvoiceHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *InvoiceHandlerTestSuite) TestListInvoices_Success() {
	req := httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	rows := []dto.InvoiceRow{
		{
			Vendor:    gofakeit.Company(),
			Date:      "2026-04-12",
			InvoiceNo: "INV-2026-000001",
			Amount:    decimal.NewFromFloat(420.50),
			Status:    models.InvoiceStatusProcessed,
		},
	}

	s.mockInvoiceService.EXPECT().ListInvoices(dto.InvoiceListQuery{}).Return(rows, nil)

	err := s.handler.ListInvoices(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response []map[string]interface{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response, 1)
	s.Equal(rows[0].Vendor, response[0]["vendor"])
	s.Equal("2026-04-12", response[0]["date"])
	s.Equal("INV-2026-000001", response[0]["invoiceNo"])
	s.Equal("420.5", response[0]["amount"])
	s.Equal(models.InvoiceStatusProcessed, response[0]["status"])
}

func (s *InvoiceHandlerTestSuite) TestListInvoices_BindsQueryParams() {
	req := httptest.NewRequest(http.MethodGet, "/api/invoices?search=acme&sort=amount&order=asc", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.mockInvoiceService.EXPECT().
		ListInvoices(dto.InvoiceListQuery{Search: "acme", Sort: "amount", Order: "asc"}).
		Return([]dto.InvoiceRow{}, nil)

	err := s.handler.ListInvoices(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq("[]", rec.Body.String())
}

// An unknown sort column is rejected before the service runs; the
// validation error propagates to the central error handler.
func (s *InvoiceHandlerTestSuite) TestListInvoices_RejectsUnknownSort() {
	req := httptest.NewRequest(http.MethodGet, "/api/invoices?sort=vendors.name;--", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.ListInvoices(c)

	s.Error(err)
	var validationErrs validator.ValidationErrors
	s.ErrorAs(err, &validationErrs)
}

func (s *InvoiceHandlerTestSuite) TestListInvoices_RejectsUnknownOrder() {
	req := httptest.NewRequest(http.MethodGet, "/api/invoices?order=sideways", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.ListInvoices(c)

	s.Error(err)
	var validationErrs validator.ValidationErrors
	s.ErrorAs(err, &validationErrs)
}

func (s *InvoiceHandlerTestSuite) TestListInvoices_ServiceError() {
	req := httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.mockInvoiceService.EXPECT().
		ListInvoices(gomock.Any()).
		Return(nil, errors.New("connection refused"))

	err := s.handler.ListInvoices(c)

	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)

	var response map[string]interface{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("Internal Server Error", response["error"])
}
