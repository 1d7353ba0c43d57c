package middleware

import (
	"flowbit-analytics/internal/handlers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the trace ID on requests and responses.
	TraceIDHeader = "X-Trace-ID"

	// TraceIDContextKey is where the trace ID lives in the Echo context.
	// Shared with the handlers package so SendError reads the same key.
	TraceIDContextKey = handlers.TraceIDContextKey
)

// RequestID assigns every request a trace ID and echoes it back in the
// response header. An inbound X-Trace-ID is reused only when it is a
// well-formed UUID, so a proxy in front of the dashboard can correlate
// retries without arbitrary client strings ending up in the logs.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if _, err := uuid.Parse(traceID); err != nil {
				traceID = uuid.New().String()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID extracts the trace ID from the Echo context. Returns the
// empty string when the middleware did not run.
func GetTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
