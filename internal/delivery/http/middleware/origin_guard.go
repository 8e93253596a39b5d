package middleware

import (
	"net/http"
	"strings"

	"planner/config"
	"planner/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

const headerSecFetchSite = "Sec-Fetch-Site"

// NewOriginGuard rejects state-changing requests sent by a browser page outside
// the configured origins. CORS alone does not stop a cross-site form post, and
// the server acts with the cached session of whoever runs it.
// Requests without an Origin header (the CLI, curl) pass.
func NewOriginGuard(cfg *config.Config) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(cfg.HTTP.AllowedOrigins))
	for _, origin := range cfg.HTTP.AllowedOrigins {
		allowed[strings.TrimRight(origin, "/")] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if !isStateChanging(req.Method) {
				return next(c)
			}

			origin := req.Header.Get(echo.HeaderOrigin)
			if origin == "" {
				if req.Header.Get(headerSecFetchSite) == "cross-site" {
					return forbidOrigin(c)
				}

				return next(c)
			}
			if _, ok := allowed[origin]; !ok {
				return forbidOrigin(c)
			}

			return next(c)
		}
	}
}

func forbidOrigin(c echo.Context) error {
	return response.Error(c, http.StatusForbidden, &response.ErrorInfo{Code: "FORBIDDEN_ORIGIN"},
		"Origin not allowed", "")
}

func isStateChanging(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}
