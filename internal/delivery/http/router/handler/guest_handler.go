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

// GuestHandler holds dependencies for guest list and invitation handlers.
type GuestHandler struct {
	uc     usecase.GuestUsecase
	logger *slog.Logger
}

// NewGuestHandler is the constructor for GuestHandler, injected by Fx.
func NewGuestHandler(uc usecase.GuestUsecase, logger *slog.Logger) *GuestHandler {
	return &GuestHandler{
		uc:     uc,
		logger: logger,
	}
}

// AddGuestsRequest is the body of POST /dashboard/guests.
type AddGuestsRequest struct {
	Guests []entity.NewGuest `json:"guests"`
}

// SendInvitationsRequest is the body of POST /dashboard/guests/send.
type SendInvitationsRequest struct {
	GuestIDs []string `json:"guestIds"`
}

// ListGuests returns the filtered guest list with stats of the whole list.
func (h *GuestHandler) ListGuests(c echo.Context) error {
	var filter view.GuestFilter
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &filter); err != nil {
		return response.BindingError(c, "INVALID_FILTER", "Invalid guest filter")
	}

	out, err := h.uc.ListGuests(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, out, "")
}

// AddGuests creates one or more guests.
func (h *GuestHandler) AddGuests(c echo.Context) error {
	var req AddGuestsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid guest input")
	}

	created, err := h.uc.AddGuests(c.Request().Context(), req.Guests)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, created, "Guests added")
}

// SendInvitations sends invitations to the selected guests.
func (h *GuestHandler) SendInvitations(c echo.Context) error {
	var req SendInvitationsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid selection")
	}

	report, err := h.uc.SendInvitations(c.Request().Context(), req.GuestIDs)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "Invitations processed")
}

// RemoveGuest hides one guest from the dashboard roster.
func (h *GuestHandler) RemoveGuest(c echo.Context) error {
	if err := h.uc.RemoveGuest(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c, "Guest removed")
}

// InvitationQR serves the RSVP link QR code as a PNG.
func (h *GuestHandler) InvitationQR(c echo.Context) error {
	png, err := h.uc.InvitationQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
