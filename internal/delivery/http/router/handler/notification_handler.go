package handler

import (
	"log/slog"
	"net/http"

	"planner/internal/delivery/http/response"
	"planner/internal/delivery/worker"
	"planner/internal/domain/view"
	"planner/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for inbox handlers
type NotificationHandler struct {
	uc      usecase.NotificationUsecase
	tracker *worker.UnreadTracker
	logger  *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(uc usecase.NotificationUsecase, tracker *worker.UnreadTracker, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:      uc,
		tracker: tracker,
		logger:  logger,
	}
}

// UnreadResponse is the body of GET /dashboard/notifications/unread.
type UnreadResponse struct {
	Count int `json:"count"`
	// Polled is set when the count came from the background poll.
	Polled bool `json:"polled"`
}

func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	var filter view.NotificationFilter
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &filter); err != nil {
		return response.BindingError(c, "INVALID_FILTER", "Invalid notification filter")
	}

	out, err := h.uc.ListNotifications(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, out, "")
}

// UnreadCount serves the last polled count, asking the API when no poll has landed yet.
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	if count, ok := h.tracker.Fresh(); ok {
		return response.Success(c, http.StatusOK, UnreadResponse{Count: count, Polled: true}, "")
	}

	count, err := h.uc.UnreadCount(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}
	h.tracker.Set(count)

	return response.Success(c, http.StatusOK, UnreadResponse{Count: count}, "")
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	if err := h.uc.MarkRead(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}
	h.tracker.Invalidate()

	return response.NoContent(c, "Notification marked as read")
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	if err := h.uc.MarkAllRead(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}
	h.tracker.Set(0)

	return response.NoContent(c, "All notifications marked as read")
}
