package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"planner/internal/delivery/http/response"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantStatus   int
		wantCode     string
		wantRedirect string
	}{
		{
			name:         "unauthorized carries redirect",
			err:          errors.WithStack(domainerrors.NewUnauthorizedError("", "/auth/sign-in")),
			wantStatus:   http.StatusUnauthorized,
			wantCode:     "API_UNAUTHORIZED",
			wantRedirect: "/auth/sign-in",
		},
		{
			name:       "network failure is a bad gateway",
			err:        domainerrors.NewNetworkError(assert.AnError),
			wantStatus: http.StatusBadGateway,
			wantCode:   "API_NETWORK",
		},
		{
			name:       "upstream status is kept",
			err:        domainerrors.NewHTTPError(http.StatusConflict, "Already set up", nil),
			wantStatus: http.StatusConflict,
			wantCode:   "API_HTTP",
		},
		{
			name:       "app error",
			err:        errors.Wrap(domainerrors.ErrNoGuestsSelected, "send"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "NO_GUESTS_SELECTED",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "anything else",
			err:        assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var out response.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
			assert.False(t, out.Success)
			assert.Equal(t, tt.wantStatus, out.Code)
			require.NotNil(t, out.Error)
			assert.Equal(t, tt.wantCode, out.Error.Code)
			assert.Equal(t, tt.wantRedirect, out.Redirect)
			assert.Equal(t, tt.wantRedirect, rec.Header().Get(echo.HeaderLocation))
		})
	}
}
