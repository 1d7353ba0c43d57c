package handlers

import (
	"net/http"
	"strings"

	"flowbit-analytics/internal/dto"
	apierrors "flowbit-analytics/internal/errors"
	"flowbit-analytics/internal/services"

	"github.com/labstack/echo/v4"
)

// ChatHandler serves the keyword-matched chat endpoint
type ChatHandler struct {
	chatService services.ChatServiceInterface
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService services.ChatServiceInterface) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// ChatWithData resolves a free-text query to a canned aggregation
//
// Method: POST /api/chat-with-data
//
// Request body:
//   - query: Free-text question (required)
//
// Success Response: 200 OK
//   - query: The original query echoed back
//   - message: Answer title, or a usage hint when nothing matched
//   - data: Array with the matching aggregation rows, always present
//
// Error Responses:
//   - 400: Missing query
//   - 500: Internal server error
func (h *ChatHandler) ChatWithData(c echo.Context) error {
	var request dto.ChatRequest
	if err := c.Bind(&request); err != nil {
		return SendError(c, apierrors.ChatMissingQuery)
	}

	if err := c.Validate(&request); err != nil {
		return SendError(c, apierrors.ChatMissingQuery)
	}

	// The required tag accepts whitespace-only queries; reject those too.
	if strings.TrimSpace(request.Query) == "" {
		return SendError(c, apierrors.ChatMissingQuery)
	}

	response, err := h.chatService.Ask(request.Query)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}
