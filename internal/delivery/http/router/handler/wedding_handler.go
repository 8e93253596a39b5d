package handler

import (
	"log/slog"
	"net/http"
	"time"

	"planner/internal/delivery/http/response"
	"planner/internal/domain/entity"
	"planner/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WeddingHandler holds dependencies for wedding setup handlers.
type WeddingHandler struct {
	uc     usecase.WeddingUsecase
	logger *slog.Logger
	now    func() time.Time
}

// NewWeddingHandler is the constructor for WeddingHandler, injected by Fx.
func NewWeddingHandler(uc usecase.WeddingUsecase, logger *slog.Logger) *WeddingHandler {
	return &WeddingHandler{
		uc:     uc,
		logger: logger,
		now:    time.Now,
	}
}

func (h *WeddingHandler) GetWedding(c echo.Context) error {
	wedding, err := h.uc.GetWedding(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, wedding, "")
}

func (h *WeddingHandler) SetupWedding(c echo.Context) error {
	var input entity.Wedding
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wedding input")
	}

	wedding, err := h.uc.SetupWedding(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, wedding, "Wedding created")
}

func (h *WeddingHandler) UpdateWedding(c echo.Context) error {
	var input entity.Wedding
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wedding input")
	}

	wedding, err := h.uc.UpdateWedding(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, wedding, "Wedding updated")
}

// Countdown returns the days left until the wedding.
func (h *WeddingHandler) Countdown(c echo.Context) error {
	countdown, err := h.uc.Countdown(c.Request().Context(), h.now())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, countdown, "")
}
