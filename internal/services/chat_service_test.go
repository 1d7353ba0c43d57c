package services

import (
	"errors"
	"testing"
	"time"

	"flowbit-analytics/internal/models"
	"flowbit-analytics/internal/repositories/repository_mocks"
	"flowbit-analytics/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ChatServiceTestSuite defines the test suite for ChatService
type ChatServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockAnalytics   *service_mocks.MockAnalyticsServiceInterface
	mockInvoiceRepo *repository_mocks.MockInvoiceRepositoryInterface
	service         ChatServiceInterface
}

// SetupTest runs before each test
func (s *ChatServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAnalytics = service_mocks.NewMockAnalyticsServiceInterface(s.ctrl)
	s.mockInvoiceRepo = repository_mocks.NewMockInvoiceRepositoryInterface(s.ctrl)
	s.service = NewChatService(s.mockAnalytics, s.mockInvoiceRepo)
}

// TearDownTest runs after each test
func (s *ChatServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestChatServiceSuite runs the test suite
func TestChatServiceSuite(t *testing.T) {
	suite.Run(t, new(ChatServiceTestSuite))
}

func (s *ChatServiceTestSuite) TestAsk_VendorTrigger() {
	ranking := []models.VendorSpend{
		{Vendor: "Acme Corp", TotalSpend: decimal.NewFromFloat(900.00)},
	}

	s.mockAnalytics.EXPECT().TopVendors().Return(ranking, nil)

	response, err := s.service.Ask("Show Top VENDORS")

	s.NoError(err)
	s.Equal("Show Top VENDORS", response.Query)
	s.Equal("Top 10 Vendors by Spend", response.Message)
	s.Len(response.Data, 1)
	s.Equal(ranking[0], response.Data[0])
}

// A query naming both vendors and invoices resolves to the vendor
// answer; triggers fire in declaration order.
func (s *ChatServiceTestSuite) TestAsk_VendorWinsOverInvoice() {
	s.mockAnalytics.EXPECT().TopVendors().Return([]models.VendorSpend{}, nil)

	response, err := s.service.Ask("which vendor sent the most invoices?")

	s.NoError(err)
	s.Equal("Top 10 Vendors by Spend", response.Message)
	s.NotNil(response.Data)
	s.Empty(response.Data)
}

func (s *ChatServiceTestSuite) TestAsk_InvoiceTrigger() {
	vendor := &models.Vendor{ID: uuid.New(), Name: "Globex"}
	invoices := []models.Invoice{
		{
			ID:          uuid.New(),
			InvoiceNo:   "INV-2026-000007",
			InvoiceDate: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
			Amount:      decimal.NewFromFloat(75.00),
			Status:      models.InvoiceStatusPending,
			VendorID:    vendor.ID,
			Vendor:      vendor,
		},
	}

	s.mockInvoiceRepo.EXPECT().GetRecent(10).Return(invoices, nil)

	response, err := s.service.Ask("show me recent invoices")

	s.NoError(err)
	s.Equal("Recent Invoices", response.Message)
	s.Len(response.Data, 1)
}

func (s *ChatServiceTestSuite) TestAsk_SpendTrigger() {
	stats := &models.SummaryStats{
		TotalSpend:    decimal.NewFromFloat(1234.56),
		TotalInvoices: 10,
	}

	s.mockAnalytics.EXPECT().SummaryStats().Return(stats, nil)

	response, err := s.service.Ask("what is our total spend?")

	s.NoError(err)
	s.Equal("Total Spend", response.Message)
	s.Len(response.Data, 1)
	s.Equal(stats, response.Data[0])
}

func (s *ChatServiceTestSuite) TestAsk_OverdueTrigger() {
	s.mockInvoiceRepo.EXPECT().
		GetByStatus(models.InvoiceStatusOverdue, overdueInvoiceLimit).
		Return([]models.Invoice{}, nil)

	response, err := s.service.Ask("anything overdue?")

	s.NoError(err)
	s.Equal("Overdue Invoices", response.Message)
	s.NotNil(response.Data)
	s.Empty(response.Data)
}

func (s *ChatServiceTestSuite) TestAsk_FallbackOnNoMatch() {
	response, err := s.service.Ask("what is the weather like?")

	s.NoError(err)
	s.Equal(chatFallbackMessage, response.Message)
	s.NotNil(response.Data)
	s.Empty(response.Data)
}

func (s *ChatServiceTestSuite) TestAsk_AnswerFailurePropagates() {
	s.mockAnalytics.EXPECT().TopVendors().Return(nil, errors.New("connection refused"))

	response, err := s.service.Ask("top vendors")

	s.Error(err)
	s.Nil(response)
}
