package services

import (
	"fmt"
	"log/slog"
	"strings"

	"flowbit-analytics/internal/dto"
	"flowbit-analytics/internal/models"
	"flowbit-analytics/internal/repositories"
)

const (
	// recentInvoiceLimit caps the "recent invoices" chat answer.
	recentInvoiceLimit = 10

	// overdueInvoiceLimit caps the "overdue invoices" chat answer.
	overdueInvoiceLimit = 10

	// chatFallbackMessage is returned when no trigger matches.
	chatFallbackMessage = "Try: show top vendors, show invoices, total spend etc."
)

// chatTrigger binds a query substring to an answer builder. Triggers
// are evaluated in declaration order and the first hit wins, so
// "vendor" must stay ahead of "invoice" for queries naming both.
type chatTrigger struct {
	keyword string
	answer  func(s *chatService) (string, []interface{}, error)
}

var chatTriggers = []chatTrigger{
	{keyword: "vendor", answer: (*chatService).topVendorsAnswer},
	{keyword: "invoice", answer: (*chatService).recentInvoicesAnswer},
	{keyword: "spend", answer: (*chatService).totalSpendAnswer},
	{keyword: "overdue", answer: (*chatService).overdueInvoicesAnswer},
}

type chatService struct {
	analyticsService AnalyticsServiceInterface
	invoiceRepo      repositories.InvoiceRepositoryInterface
}

// NewChatService creates a new ChatServiceInterface instance
func NewChatService(
	analyticsService AnalyticsServiceInterface,
	invoiceRepo repositories.InvoiceRepositoryInterface,
) ChatServiceInterface {
	return &chatService{
		analyticsService: analyticsService,
		invoiceRepo:      invoiceRepo,
	}
}

// Ask resolves a free-text query to a canned aggregation by scanning
// the lowercased query for trigger keywords. No match yields the
// fallback hint with an empty, non-nil data array.
func (s *chatService) Ask(query string) (*dto.ChatResponse, error) {
	normalized := strings.ToLower(query)

	for _, trigger := range chatTriggers {
		if !strings.Contains(normalized, trigger.keyword) {
			continue
		}

		message, data, err := trigger.answer(s)
		if err != nil {
			slog.Error("chat answer failed", "keyword", trigger.keyword, "error", err)
			return nil, fmt.Errorf("chat answer %q: %w", trigger.keyword, err)
		}

		slog.Info("chat query answered", "keyword", trigger.keyword, "rows", len(data))
		return &dto.ChatResponse{
			Query:   query,
			Message: message,
			Data:    data,
		}, nil
	}

	slog.Info("chat query unmatched")
	return &dto.ChatResponse{
		Query:   query,
		Message: chatFallbackMessage,
		Data:    []interface{}{},
	}, nil
}

func (s *chatService) topVendorsAnswer() (string, []interface{}, error) {
	ranking, err := s.analyticsService.TopVendors()
	if err != nil {
		return "", nil, err
	}

	data := make([]interface{}, 0, len(ranking))
	for i := range ranking {
		data = append(data, ranking[i])
	}
	return "Top 10 Vendors by Spend", data, nil
}

func (s *chatService) recentInvoicesAnswer() (string, []interface{}, error) {
	invoices, err := s.invoiceRepo.GetRecent(recentInvoiceLimit)
	if err != nil {
		return "", nil, err
	}

	data := make([]interface{}, 0, len(invoices))
	for i := range invoices {
		data = append(data, FlattenInvoice(&invoices[i]))
	}
	return "Recent Invoices", data, nil
}

func (s *chatService) totalSpendAnswer() (string, []interface{}, error) {
	stats, err := s.analyticsService.SummaryStats()
	if err != nil {
		return "", nil, err
	}

	return "Total Spend", []interface{}{stats}, nil
}

func (s *chatService) overdueInvoicesAnswer() (string, []interface{}, error) {
	invoices, err := s.invoiceRepo.GetByStatus(models.InvoiceStatusOverdue, overdueInvoiceLimit)
	if err != nil {
		return "", nil, err
	}

	data := make([]interface{}, 0, len(invoices))
	for i := range invoices {
		data = append(data, FlattenInvoice(&invoices[i]))
	}
	return "Overdue Invoices", data, nil
}
