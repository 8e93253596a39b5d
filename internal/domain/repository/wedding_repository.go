package repository

import (
	"context"

	"planner/internal/domain/entity"
)

// WeddingRepository defines access to the account's wedding.
type WeddingRepository interface {
	Get(ctx context.Context) (*entity.Wedding, error)
	Create(ctx context.Context, wedding *entity.Wedding) (*entity.Wedding, error)
	Update(ctx context.Context, wedding *entity.Wedding) (*entity.Wedding, error)
}

// ScheduleRepository defines the timeline endpoints.
type ScheduleRepository interface {
	// Replace overwrites the whole timeline with events and returns what the server stored.
	Replace(ctx context.Context, events []entity.ScheduleEvent) ([]entity.ScheduleEvent, error)

	// UpdateStatus changes the status of a single event.
	UpdateStatus(ctx context.Context, id string, status entity.EventStatus) (*entity.ScheduleEvent, error)
}
