package response

import (
	"net/http"

	domainerrors "planner/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	// Redirect is the route the client should go to next, set on 401 and after login/logout.
	Redirect string `json:"redirect,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string                    `json:"code"`    // Business error code, e.g., "GUEST_NOT_FOUND"
	Details string                    `json:"details"` // Detailed error description
	Fields  []domainerrors.FieldError `json:"fields,omitempty"`
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Redirect is a successful response that tells the client where to go next.
func Redirect(c echo.Context, data any, message, route string) error {
	return c.JSON(http.StatusOK, Response{
		Success:  true,
		Code:     http.StatusOK,
		Message:  message,
		Data:     data,
		Redirect: route,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, info *ErrorInfo, message, redirect string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	if redirect != "" && statusCode == http.StatusUnauthorized {
		c.Response().Header().Set(echo.HeaderLocation, redirect)
	}

	return c.JSON(statusCode, Response{
		Success:  false,
		Code:     statusCode,
		Message:  message,
		Error:    info,
		Redirect: redirect,
	})
}

// BindingError binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, &ErrorInfo{Code: errorCode}, message, "")
}

// NoContent is the envelope of a successful call without a payload.
func NoContent(c echo.Context, message string) error {
	return Success(c, http.StatusOK, nil, message)
}
