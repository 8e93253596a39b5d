package errors

import (
	"net/http"
	"testing"

	"planner/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_KindOfThroughWrapping(t *testing.T) {
	base := NewHTTPError(http.StatusConflict, "", nil)
	wrapped := errors.Wrap(base, "failed to create gift")

	assert.Equal(t, KindHTTP, KindOf(wrapped))
	assert.Equal(t, "Conflict", base.Message())
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
}

func TestAPIError_HTTPCode(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want int
	}{
		{name: "network", err: NewNetworkError(errors.New("dial tcp: refused")), want: http.StatusBadGateway},
		{name: "decode", err: NewDecodeError(http.StatusOK, errors.New("eof")), want: http.StatusBadGateway},
		{name: "validation", err: NewValidationError(FieldError{Field: "email", Message: "invalid"}), want: http.StatusBadRequest},
		{name: "unauthorized", err: NewUnauthorizedError("", "/auth/sign-in"), want: http.StatusUnauthorized},
		{name: "http passthrough", err: NewHTTPError(http.StatusUnprocessableEntity, "bad", nil), want: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPCode())
		})
	}
}

func TestAPIError_DetailsAndError(t *testing.T) {
	err := NewHTTPError(http.StatusBadRequest, "Validation failed", []FieldError{
		{Field: "email", Message: "must be a valid email"},
		{Field: "name", Message: "is required"},
	})

	assert.Equal(t, "email: must be a valid email; name: is required", err.Details())
	assert.Contains(t, err.Error(), "http 400: Validation failed")
	assert.Equal(t, "API_HTTP", err.ErrorCode())
	assert.True(t, IsUnauthorized(NewUnauthorizedError("", "/auth/sign-in")))
	assert.True(t, IsNotFound(NewHTTPError(http.StatusNotFound, "", nil)))
}

func TestBaseError_IsMatchesDetailedCopy(t *testing.T) {
	detailed := ErrScheduleEventNotFound.WithDetails("id=abc")

	assert.ErrorIs(t, detailed, ErrScheduleEventNotFound)
	assert.NotErrorIs(t, detailed, ErrGuestNotFound)
}
