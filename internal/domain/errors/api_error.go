package errors

import (
	"fmt"
	"net/http"
	"strings"

	"planner/internal/errors"
)

// Kind discriminates why a remote call failed.
type Kind string

const (
	// KindNetwork means no response was received.
	KindNetwork Kind = "network"
	// KindHTTP means the server answered with a non-2xx status.
	KindHTTP Kind = "http"
	// KindUnauthorized means the server answered 401 and the session was invalidated.
	KindUnauthorized Kind = "unauthorized"
	// KindValidation means the request never left the client because its input was invalid.
	KindValidation Kind = "validation"
	// KindDecode means a 2xx body could not be decoded.
	KindDecode Kind = "decode"
)

// FieldError is a single server- or client-side field validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is the one failure shape every remote call returns.
type APIError struct {
	Kind     Kind
	Status   int
	Msg      string
	Errors   []FieldError
	Redirect string // sign-in route for KindUnauthorized
	cause    error
}

// NewNetworkError wraps a transport failure.
func NewNetworkError(cause error) *APIError {
	return &APIError{
		Kind:  KindNetwork,
		Msg:   "Unable to reach the server, check your connection",
		cause: cause,
	}
}

// NewHTTPError builds an error from a non-2xx response.
func NewHTTPError(status int, message string, fields []FieldError) *APIError {
	if strings.TrimSpace(message) == "" {
		message = http.StatusText(status)
	}

	return &APIError{
		Kind:   KindHTTP,
		Status: status,
		Msg:    message,
		Errors: fields,
	}
}

// NewUnauthorizedError builds the error returned for every 401.
func NewUnauthorizedError(message, redirect string) *APIError {
	if strings.TrimSpace(message) == "" {
		message = "Your session has expired, please sign in again"
	}

	return &APIError{
		Kind:     KindUnauthorized,
		Status:   http.StatusUnauthorized,
		Msg:      message,
		Redirect: redirect,
	}
}

// NewDecodeError wraps a body decoding failure.
func NewDecodeError(status int, cause error) *APIError {
	return &APIError{
		Kind:   KindDecode,
		Status: status,
		Msg:    "Unexpected response from the server",
		cause:  cause,
	}
}

// NewValidationError reports client-side field failures.
func NewValidationError(fields ...FieldError) *APIError {
	return &APIError{
		Kind:   KindValidation,
		Status: http.StatusBadRequest,
		Msg:    ErrValidationFailed.Message(),
		Errors: fields,
	}
}

func (e *APIError) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if e.Status != 0 {
		fmt.Fprintf(&b, " %d", e.Status)
	}
	b.WriteString(": ")
	b.WriteString(e.Msg)
	for _, f := range e.Errors {
		fmt.Fprintf(&b, "; %s: %s", f.Field, f.Message)
	}
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}

	return b.String()
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// HTTPCode implements AppError. Network failures surface as 502.
func (e *APIError) HTTPCode() int {
	switch e.Kind {
	case KindNetwork, KindDecode:
		return http.StatusBadGateway
	case KindValidation:
		return http.StatusBadRequest
	}
	if e.Status == 0 {
		return http.StatusInternalServerError
	}

	return e.Status
}

// ErrorCode implements AppError.
func (e *APIError) ErrorCode() string {
	return "API_" + strings.ToUpper(string(e.Kind))
}

// Message implements AppError.
func (e *APIError) Message() string {
	return e.Msg
}

// Details implements AppError.
func (e *APIError) Details() string {
	if len(e.Errors) == 0 {
		return ""
	}
	parts := make([]string, 0, len(e.Errors))
	for _, f := range e.Errors {
		parts = append(parts, f.Field+": "+f.Message)
	}

	return strings.Join(parts, "; ")
}

// AsAPIError extracts the APIError from err's chain.
func AsAPIError(err error) (*APIError, bool) {
	return errors.AsType[*APIError](err)
}

// KindOf returns the Kind of err, or "" when err is not an APIError.
func KindOf(err error) Kind {
	if apiErr, ok := AsAPIError(err); ok {
		return apiErr.Kind
	}

	return ""
}

// IsUnauthorized reports whether err is a 401 from the remote API.
func IsUnauthorized(err error) bool {
	return KindOf(err) == KindUnauthorized
}

// IsNotFound reports whether err is a 404 from the remote API.
func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)

	return ok && apiErr.Kind == KindHTTP && apiErr.Status == http.StatusNotFound
}
