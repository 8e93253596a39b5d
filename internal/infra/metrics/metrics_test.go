package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveAPICall(t *testing.T) {
	m := New()

	m.ObserveAPICall(http.MethodGet, "/api/v1/invites", http.StatusOK, time.Now())
	m.ObserveAPICall(http.MethodGet, "/api/v1/invites", http.StatusOK, time.Now())
	m.ObserveAPICall(http.MethodPost, "/api/v1/invites/send", 0, time.Now())

	assert.InDelta(t, 2, testutil.ToFloat64(m.apiRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/invites", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.apiRequestsTotal.WithLabelValues(http.MethodPost, "/api/v1/invites/send", "network_error")), 0)
}

func TestMetrics_SetUnread(t *testing.T) {
	m := New()
	m.SetUnread(7)

	assert.InDelta(t, 7, testutil.ToFloat64(m.unreadNotifications), 0)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveAPICall(http.MethodGet, "/x", 200, time.Now())
		m.SetUnread(1)
	})
}

func TestMetrics_MiddlewareAndHandler(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware)
	e.GET("/api/v1/dashboard/guests/:id/qr", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/guests/g1/qr", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `planner_http_requests_total{method="GET",route="/api/v1/dashboard/guests/:id/qr",status="204"} 1`), body)
}
