// Package metrics owns the Prometheus collectors of the client and the
// dashboard server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds every collector on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	apiRequestsTotal   *prometheus.CounterVec
	apiRequestDuration *prometheus.HistogramVec

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	unreadNotifications prometheus.Gauge
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		apiRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "planner_api_requests_total",
			Help: "Total number of calls made to the wedding-planning API.",
		}, []string{"method", "route", "status"}),
		apiRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "planner_api_request_duration_seconds",
			Help:    "Histogram of latencies of calls to the wedding-planning API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "planner_http_requests_total",
			Help: "Total number of requests served by the dashboard.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "planner_http_request_duration_seconds",
			Help:    "Histogram of latencies of dashboard requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		unreadNotifications: factory.NewGauge(prometheus.GaugeOpts{
			Name: "planner_unread_notifications",
			Help: "Unread notification count seen by the last poll.",
		}),
	}
}

// ObserveAPICall records one remote call. Status 0 means no response was received.
func (m *Metrics) ObserveAPICall(method, route string, status int, start time.Time) {
	if m == nil {
		return
	}
	m.apiRequestsTotal.WithLabelValues(method, route, statusLabel(status)).Inc()
	m.apiRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

// SetUnread publishes the latest unread notification count.
func (m *Metrics) SetUnread(count int) {
	if m == nil {
		return
	}
	m.unreadNotifications.Set(float64(count))
}

// Middleware records dashboard request metrics labelled by the matched route pattern.
func (m *Metrics) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			if httpErr, ok := err.(*echo.HTTPError); ok {
				status = httpErr.Code
			}
		}
		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequestsTotal.WithLabelValues(c.Request().Method, route, statusLabel(status)).Inc()
		m.httpRequestDuration.WithLabelValues(c.Request().Method, route).Observe(time.Since(start).Seconds())

		return err
	}
}

// Handler exposes the Prometheus metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func statusLabel(status int) string {
	if status == 0 {
		return "network_error"
	}

	return strconv.Itoa(status)
}
