package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"planner/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestOriginGuard(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.AllowedOrigins = []string{"http://localhost:3000"}

	tests := []struct {
		name       string
		method     string
		origin     string
		fetchSite  string
		wantStatus int
	}{
		{name: "allowed origin post", method: http.MethodPost, origin: "http://localhost:3000", wantStatus: http.StatusNoContent},
		{name: "foreign origin post", method: http.MethodPost, origin: "https://evil.example", wantStatus: http.StatusForbidden},
		{name: "foreign origin delete", method: http.MethodDelete, origin: "https://evil.example", wantStatus: http.StatusForbidden},
		{name: "foreign origin get passes", method: http.MethodGet, origin: "https://evil.example", wantStatus: http.StatusNoContent},
		{name: "no origin from cli", method: http.MethodPost, wantStatus: http.StatusNoContent},
		{name: "no origin but cross-site fetch", method: http.MethodPost, fetchSite: "cross-site", wantStatus: http.StatusForbidden},
		{name: "no origin same-origin fetch", method: http.MethodPut, fetchSite: "same-origin", wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(tt.method, "/api/v1/dashboard/guests/send", nil)
			if tt.origin != "" {
				req.Header.Set(echo.HeaderOrigin, tt.origin)
			}
			if tt.fetchSite != "" {
				req.Header.Set("Sec-Fetch-Site", tt.fetchSite)
			}
			rec := httptest.NewRecorder()

			called := false
			handler := NewOriginGuard(cfg)(func(c echo.Context) error {
				called = true

				return c.NoContent(http.StatusNoContent)
			})

			assert.NoError(t, handler(e.NewContext(req, rec)))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus == http.StatusNoContent, called)
			if tt.wantStatus == http.StatusForbidden {
				assert.Contains(t, rec.Body.String(), "FORBIDDEN_ORIGIN")
			}
		})
	}
}
