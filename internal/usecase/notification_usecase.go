package usecase

import (
	"context"

	"planner/internal/domain/view"
)

// NotificationUsecase defines the inbox use cases.
type NotificationUsecase interface {
	ListNotifications(ctx context.Context, filter view.NotificationFilter) (*view.NotificationView, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	UnreadCount(ctx context.Context) (int, error)
}
