package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "planner/internal/delivery/context"
	"planner/internal/delivery/http/response"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	log := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	// Failures of the remote API keep their kind, field errors and redirect.
	if apiErr, ok := domainerrors.AsAPIError(err); ok {
		code := apiErr.HTTPCode()
		if code >= http.StatusInternalServerError {
			log.Warn("Wedding API call failed", slog.Any("error", err))
		}
		_ = response.Error(c, code, &response.ErrorInfo{
			Code:    apiErr.ErrorCode(),
			Details: apiErr.Details(),
			Fields:  apiErr.Errors,
		}, apiErr.Message(), apiErr.Redirect)

		return
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		_ = response.Error(c, appErr.HTTPCode(), &response.ErrorInfo{
			Code:    appErr.ErrorCode(),
			Details: appErr.Details(),
		}, appErr.Message(), "")

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, &response.ErrorInfo{Code: "HTTP_ERROR", Details: message}, message, "")

		return
	}

	// Internal details stay in the log.
	log.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, http.StatusInternalServerError, &response.ErrorInfo{
		Code: domainerrors.ErrInternalError.ErrorCode(),
	}, domainerrors.ErrInternalError.Message(), "")
}
