package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "planner/internal/delivery/context"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/domain/schedule"
	"planner/internal/domain/validation"
	"planner/internal/errors"
	"planner/internal/usecase"
)

type scheduleService struct {
	weddingRepo  repository.WeddingRepository
	scheduleRepo repository.ScheduleRepository
	logger       *slog.Logger
}

// NewScheduleService is the constructor for scheduleService.
func NewScheduleService(
	weddingRepo repository.WeddingRepository,
	scheduleRepo repository.ScheduleRepository,
	logger *slog.Logger,
) usecase.ScheduleUsecase {
	return &scheduleService{
		weddingRepo:  weddingRepo,
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

func (s *scheduleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// load reads the timeline embedded in the wedding.
func (s *scheduleService) load(ctx context.Context) (*schedule.List, error) {
	wedding, err := s.weddingRepo.Get(ctx)
	if err != nil {
		if domainerrors.IsNotFound(err) {
			return nil, domainerrors.ErrWeddingNotFound
		}

		return nil, errors.Wrap(err, "failed to load wedding")
	}

	return schedule.NewList(wedding.Schedule), nil
}

// persist replaces the remote timeline with list. A failed replace is
// all-or-nothing from the client's view: nothing local is kept.
func (s *scheduleService) persist(ctx context.Context, list *schedule.List) ([]entity.ScheduleEvent, error) {
	stored, err := s.scheduleRepo.Replace(ctx, list.Events())
	if err != nil {
		s.log(ctx).Warn("Schedule replace failed", slog.Int("events", list.Len()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to save schedule")
	}

	return stored, nil
}

func normalizeEvent(e entity.ScheduleEvent) entity.ScheduleEvent {
	e.Time = strings.TrimSpace(e.Time)
	e.Event = strings.TrimSpace(e.Event)
	e.Location = strings.TrimSpace(e.Location)
	e.Responsible = strings.TrimSpace(e.Responsible)

	return e
}

func findEvent(events []entity.ScheduleEvent, id string) (*entity.ScheduleEvent, bool) {
	for i := range events {
		if events[i].ID == id {
			return &events[i], true
		}
	}

	return nil, false
}

func (s *scheduleService) GetSchedule(ctx context.Context) ([]entity.ScheduleEvent, error) {
	list, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	return list.Events(), nil
}

func (s *scheduleService) AddEvent(ctx context.Context, event entity.ScheduleEvent) (*entity.ScheduleEvent, error) {
	event = normalizeEvent(event)
	event.ID = ""
	if err := validation.Struct(event); err != nil {
		return nil, err
	}

	list, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	id := list.Add(event)

	stored, err := s.persist(ctx, list)
	if err != nil {
		return nil, err
	}
	if e, ok := findEvent(stored, id); ok {
		return e, nil
	}
	added, _ := list.Get(id)

	return &added, nil
}

func (s *scheduleService) UpdateEvent(ctx context.Context, id string, event entity.ScheduleEvent) (*entity.ScheduleEvent, error) {
	event = normalizeEvent(event)
	if err := validation.Struct(event); err != nil {
		return nil, err
	}

	list, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if !list.Update(id, event) {
		return nil, domainerrors.ErrScheduleEventNotFound
	}

	stored, err := s.persist(ctx, list)
	if err != nil {
		return nil, err
	}
	if e, ok := findEvent(stored, id); ok {
		return e, nil
	}
	updated, _ := list.Get(id)

	return &updated, nil
}

func (s *scheduleService) DeleteEvent(ctx context.Context, id string) error {
	list, err := s.load(ctx)
	if err != nil {
		return err
	}
	if !list.Remove(id) {
		return domainerrors.ErrScheduleEventNotFound
	}

	_, err = s.persist(ctx, list)

	return err
}

func (s *scheduleService) MoveEvent(ctx context.Context, id string, index int) ([]entity.ScheduleEvent, error) {
	list, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if !list.Move(id, index) {
		return nil, domainerrors.ErrScheduleEventNotFound
	}

	return s.persist(ctx, list)
}

// SetEventStatus goes through the per-event endpoint. Any valid status is accepted.
func (s *scheduleService) SetEventStatus(ctx context.Context, id string, status entity.EventStatus) (*entity.ScheduleEvent, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidStatus
	}

	event, err := s.scheduleRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if domainerrors.IsNotFound(err) {
			return nil, domainerrors.ErrScheduleEventNotFound
		}

		return nil, errors.Wrap(err, "failed to update event status")
	}

	return event, nil
}
