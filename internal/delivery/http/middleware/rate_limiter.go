package middleware

import (
	"net/http"
	"time"

	"planner/config"
	"planner/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// rateLimiterTTL drops idle client buckets.
const rateLimiterTTL = 3 * time.Minute

// NewRateLimiter returns a per-client token bucket limiter keyed by remote IP.
func NewRateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.RateLimit.RPS),
		Burst:     cfg.RateLimit.Burst,
		ExpiresIn: rateLimiterTTL,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/health"
		},
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, _ error) error {
			return response.Error(c, http.StatusForbidden, &response.ErrorInfo{Code: "CLIENT_UNIDENTIFIED"}, "", "")
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return response.Error(c, http.StatusTooManyRequests, &response.ErrorInfo{Code: "RATE_LIMITED"},
				"Too many requests, slow down", "")
		},
	})
}
