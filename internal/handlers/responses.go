package handlers

import (
	"log/slog"
	"net/http"

	"crm-service/internal/errors"
	"crm-service/internal/validation"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// 1. SendError - client and business rule errors (4xx, and the SYNC_* 5xx codes)
//    - Validation errors: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - Not found errors: SendError(c, errors.CustomerNotFound)
//    - Conflicts: SendError(c, errors.ProductAlreadyExists)
//
// 2. SendValidationError - go-playground validator failures, one detail per field
//
// 3. SendSystemError - anything unexpected. The cause is logged with the trace
//    ID and never returned to the client.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendValidationError renders validator errors field by field. Other errors
// become a generic VALIDATION_001.
func SendValidationError(c echo.Context, err error) error {
	fields := validation.FieldErrors(err)
	if len(fields) == 0 {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	return c.JSON(http.StatusBadRequest, errors.NewValidationError(fields, getTraceID(c)))
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internal := errors.WrapSystemError(err, traceID)
	slog.ErrorContext(c.Request().Context(), "request failed",
		"trace_id", traceID,
		"path", c.Path(),
		"method", c.Request().Method,
		"error", internal,
	)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
