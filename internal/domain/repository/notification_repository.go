package repository

import (
	"context"

	"planner/internal/domain/entity"
)

// NotificationRepository defines the inbox endpoints.
type NotificationRepository interface {
	List(ctx context.Context) ([]entity.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
}
