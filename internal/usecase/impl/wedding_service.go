package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "planner/internal/delivery/context"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/domain/validation"
	"planner/internal/errors"
	"planner/internal/usecase"
	"planner/internal/util"
)

type weddingService struct {
	weddingRepo repository.WeddingRepository
	logger      *slog.Logger
}

// NewWeddingService is the constructor for weddingService.
func NewWeddingService(weddingRepo repository.WeddingRepository, logger *slog.Logger) usecase.WeddingUsecase {
	return &weddingService{
		weddingRepo: weddingRepo,
		logger:      logger,
	}
}

func (s *weddingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *weddingService) GetWedding(ctx context.Context) (*entity.Wedding, error) {
	wedding, err := s.weddingRepo.Get(ctx)
	if err != nil {
		if domainerrors.IsNotFound(err) {
			return nil, domainerrors.ErrWeddingNotFound
		}

		return nil, errors.Wrap(err, "failed to get wedding")
	}

	return wedding, nil
}

func normalizeWedding(w *entity.Wedding) {
	w.Title = strings.TrimSpace(w.Title)
	w.Venue = strings.TrimSpace(w.Venue)
	w.PrimaryColor = strings.TrimSpace(w.PrimaryColor)
}

func (s *weddingService) SetupWedding(ctx context.Context, wedding *entity.Wedding) (*entity.Wedding, error) {
	if wedding == nil {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "wedding", Message: "is required"})
	}
	normalizeWedding(wedding)
	if err := validation.Struct(wedding); err != nil {
		return nil, err
	}

	created, err := s.weddingRepo.Create(ctx, wedding)
	if err != nil {
		return nil, errors.Wrap(err, "failed to set up wedding")
	}
	s.log(ctx).Info("Wedding set up", slog.String("weddingID", created.ID))

	return created, nil
}

func (s *weddingService) UpdateWedding(ctx context.Context, wedding *entity.Wedding) (*entity.Wedding, error) {
	if wedding == nil {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "wedding", Message: "is required"})
	}
	normalizeWedding(wedding)
	if err := validation.Struct(wedding); err != nil {
		return nil, err
	}

	updated, err := s.weddingRepo.Update(ctx, wedding)
	if err != nil {
		if domainerrors.IsNotFound(err) {
			return nil, domainerrors.ErrWeddingNotFound
		}

		return nil, errors.Wrap(err, "failed to update wedding")
	}

	return updated, nil
}

func (s *weddingService) Countdown(ctx context.Context, now time.Time) (*usecase.Countdown, error) {
	wedding, err := s.GetWedding(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.Countdown{
		Title: wedding.Title,
		Date:  wedding.Date,
		Days:  util.DaysUntil(now, wedding.Date),
	}, nil
}
