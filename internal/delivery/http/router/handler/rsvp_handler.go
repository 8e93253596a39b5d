package handler

import (
	"log/slog"
	"net/http"

	"planner/internal/delivery/http/response"
	"planner/internal/domain/entity"
	"planner/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RSVPHandler serves the public reply page data. No session is needed.
type RSVPHandler struct {
	uc     usecase.RSVPUsecase
	logger *slog.Logger
}

// NewRSVPHandler is the constructor for RSVPHandler, injected by Fx.
func NewRSVPHandler(uc usecase.RSVPUsecase, logger *slog.Logger) *RSVPHandler {
	return &RSVPHandler{
		uc:     uc,
		logger: logger,
	}
}

func (h *RSVPHandler) GetInvitation(c echo.Context) error {
	invitation, err := h.uc.GetInvitation(c.Request().Context(), c.Param("token"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, invitation, "")
}

func (h *RSVPHandler) Submit(c echo.Context) error {
	var input entity.RSVPSubmission
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid RSVP input")
	}

	invitation, err := h.uc.Submit(c.Request().Context(), c.Param("token"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, invitation, "Thank you for your reply")
}
