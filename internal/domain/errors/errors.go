package errors

import (
	"net/http"

	"planner/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches on the business error code so WithDetails copies still match the sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Session errors
	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"Please sign in to continue",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"Email or username and password are required",
		"",
	)

	// Guest and invitation errors
	ErrNoGuestsSelected = NewBaseError(
		http.StatusBadRequest,
		"NO_GUESTS_SELECTED",
		"Select at least one guest to send invitations",
		"",
	)

	ErrGuestNotFound = NewBaseError(
		http.StatusNotFound,
		"GUEST_NOT_FOUND",
		"Guest not found",
		"",
	)

	ErrRSVPTokenMissing = NewBaseError(
		http.StatusNotFound,
		"RSVP_TOKEN_MISSING",
		"This guest has no RSVP link yet",
		"",
	)

	// Wedding and schedule errors
	ErrWeddingNotFound = NewBaseError(
		http.StatusNotFound,
		"WEDDING_NOT_FOUND",
		"Set up your wedding first",
		"",
	)

	ErrScheduleEventNotFound = NewBaseError(
		http.StatusNotFound,
		"SCHEDULE_EVENT_NOT_FOUND",
		"Schedule event not found",
		"",
	)

	// Registry errors
	ErrGiftNotFound = NewBaseError(
		http.StatusNotFound,
		"GIFT_NOT_FOUND",
		"Gift not found",
		"",
	)

	// Gallery errors
	ErrNoImages = NewBaseError(
		http.StatusBadRequest,
		"NO_IMAGES",
		"Select at least one image to upload",
		"",
	)

	ErrUnsupportedImage = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_IMAGE",
		"Only jpg, png, gif and webp images can be uploaded",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS",
		"Unknown status value",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Something went wrong, please try again",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)
