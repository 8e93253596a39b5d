package handler

import (
	"log/slog"
	"net/http"

	"planner/internal/delivery/http/response"
	"planner/internal/delivery/worker"
	"planner/internal/domain/entity"
	"planner/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for session handlers.
// The unread tracker belongs to the signed-in account, so every session
// change drops it.
type AuthHandler struct {
	uc      usecase.AuthUsecase
	tracker *worker.UnreadTracker
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, tracker *worker.UnreadTracker, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:      uc,
		tracker: tracker,
		logger:  logger,
	}
}

// Login signs in with an email or username.
func (h *AuthHandler) Login(c echo.Context) error {
	var input entity.Credentials
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}
	h.tracker.Invalidate()

	return response.Redirect(c, output.User, "Login successful", output.Redirect)
}

// Register creates an account and signs it in.
func (h *AuthHandler) Register(c echo.Context) error {
	var input entity.Registration
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}
	h.tracker.Invalidate()

	return response.Redirect(c, output.User, "Account created", output.Redirect)
}

// Logout drops the session. It succeeds even when the API is unreachable.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.tracker.Invalidate()
	route, err := h.uc.Logout(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Redirect(c, nil, "Signed out", route)
}

// Session reports the current session without failing when there is none.
func (h *AuthHandler) Session(c echo.Context) error {
	state, err := h.uc.LoadSession(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state, "")
}
