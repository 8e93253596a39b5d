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

// ScheduleHandler holds dependencies for timeline handlers.
type ScheduleHandler struct {
	uc     usecase.ScheduleUsecase
	logger *slog.Logger
}

// NewScheduleHandler is the constructor for ScheduleHandler, injected by Fx.
func NewScheduleHandler(uc usecase.ScheduleUsecase, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		uc:     uc,
		logger: logger,
	}
}

// StatusRequest is the body of the status endpoints.
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// MoveRequest is the body of POST /dashboard/schedule/:id/move.
type MoveRequest struct {
	Index *int `json:"index" validate:"required"`
}

func (h *ScheduleHandler) GetSchedule(c echo.Context) error {
	events, err := h.uc.GetSchedule(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events, "")
}

func (h *ScheduleHandler) AddEvent(c echo.Context) error {
	var input entity.ScheduleEvent
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid schedule event")
	}

	event, err := h.uc.AddEvent(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, event, "Event added")
}

func (h *ScheduleHandler) UpdateEvent(c echo.Context) error {
	var input entity.ScheduleEvent
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid schedule event")
	}

	event, err := h.uc.UpdateEvent(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, event, "Event updated")
}

func (h *ScheduleHandler) DeleteEvent(c echo.Context) error {
	if err := h.uc.DeleteEvent(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c, "Event removed")
}

// MoveEvent reorders the timeline and returns it.
func (h *ScheduleHandler) MoveEvent(c echo.Context) error {
	var req MoveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid move input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	events, err := h.uc.MoveEvent(c.Request().Context(), c.Param("id"), *req.Index)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events, "Event moved")
}

func (h *ScheduleHandler) SetEventStatus(c echo.Context) error {
	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	event, err := h.uc.SetEventStatus(c.Request().Context(), c.Param("id"), entity.EventStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, event, "Status updated")
}
