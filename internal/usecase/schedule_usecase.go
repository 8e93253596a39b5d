package usecase

import (
	"context"

	"planner/internal/domain/entity"
)

// ScheduleUsecase defines edits of the wedding-day timeline. Every edit but
// SetEventStatus persists the whole timeline in one replace call.
type ScheduleUsecase interface {
	GetSchedule(ctx context.Context) ([]entity.ScheduleEvent, error)
	AddEvent(ctx context.Context, event entity.ScheduleEvent) (*entity.ScheduleEvent, error)
	UpdateEvent(ctx context.Context, id string, event entity.ScheduleEvent) (*entity.ScheduleEvent, error)
	DeleteEvent(ctx context.Context, id string) error
	MoveEvent(ctx context.Context, id string, index int) ([]entity.ScheduleEvent, error)
	SetEventStatus(ctx context.Context, id string, status entity.EventStatus) (*entity.ScheduleEvent, error)
}
