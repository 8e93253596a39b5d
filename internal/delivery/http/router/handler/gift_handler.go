package handler

import (
	"log/slog"
	"net/http"

	"planner/internal/delivery/http/response"
	"planner/internal/domain/entity"
	"planner/internal/domain/view"
	"planner/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GiftHandler holds dependencies for registry handlers.
type GiftHandler struct {
	uc     usecase.GiftUsecase
	logger *slog.Logger
}

// NewGiftHandler is the constructor for GiftHandler, injected by Fx.
func NewGiftHandler(uc usecase.GiftUsecase, logger *slog.Logger) *GiftHandler {
	return &GiftHandler{
		uc:     uc,
		logger: logger,
	}
}

func (h *GiftHandler) ListGifts(c echo.Context) error {
	var filter view.GiftFilter
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &filter); err != nil {
		return response.BindingError(c, "INVALID_FILTER", "Invalid gift filter")
	}

	out, err := h.uc.ListGifts(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, out, "")
}

func (h *GiftHandler) CreateGift(c echo.Context) error {
	var input entity.GiftItem
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid gift input")
	}

	gift, err := h.uc.CreateGift(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, gift, "Gift added")
}

func (h *GiftHandler) UpdateGift(c echo.Context) error {
	var input entity.GiftItem
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid gift input")
	}

	gift, err := h.uc.UpdateGift(c.Request().Context(), c.Param("id"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, gift, "Gift updated")
}

func (h *GiftHandler) DeleteGift(c echo.Context) error {
	if err := h.uc.DeleteGift(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c, "Gift removed")
}

func (h *GiftHandler) SetGiftStatus(c echo.Context) error {
	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	gift, err := h.uc.SetGiftStatus(c.Request().Context(), c.Param("id"), entity.GiftStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, gift, "Status updated")
}
