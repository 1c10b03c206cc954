package response

import (
	"net/http"

	deliverycontext "shaka/internal/delivery/context"
	domainerrors "shaka/internal/domain/errors"
	"shaka/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// ValidationDetails lists the rejected request fields
type ValidationDetails struct {
	Fields []domainerrors.FieldViolation `json:"fields"`
}

// RateLimitedResponse is the fixed body sent with 429.
type RateLimitedResponse struct {
	Error string `json:"error"`
}

// RateLimitedMessage is the 429 body text.
const RateLimitedMessage = "Too many requests, please try again later."

// Success writes the payload as is. Surf spot endpoints return bare DTOs.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authorization errors
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.RequestID(c),
		},
	})
}

// TooManyRequests writes the rate limiter's rejection body
func TooManyRequests(c echo.Context) error {
	return c.JSON(http.StatusTooManyRequests, RateLimitedResponse{Error: RateLimitedMessage})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError converts domain errors to HTTP responses. Validation errors carry their fields.
func HandleAppError(c echo.Context, err error) error {
	var verr *domainerrors.ValidationError
	if errors.As(err, &verr) {
		return Error(c, verr.HTTPCode(), verr.ErrorCode(), verr.Message(), ValidationDetails{Fields: verr.Fields})
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)
	}

	return errors.WithStack(err)
}
