package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "planner/internal/delivery/context"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/domain/validation"
	"planner/internal/errors"
	"planner/internal/usecase"
)

var errRSVPLinkInvalid = domainerrors.ErrNotFound.WithDetails("RSVP link is invalid or expired")

type rsvpService struct {
	rsvpRepo repository.RSVPRepository
	logger   *slog.Logger
}

// NewRSVPService is the constructor for rsvpService.
func NewRSVPService(rsvpRepo repository.RSVPRepository, logger *slog.Logger) usecase.RSVPUsecase {
	return &rsvpService{
		rsvpRepo: rsvpRepo,
		logger:   logger,
	}
}

func (s *rsvpService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *rsvpService) GetInvitation(ctx context.Context, token string) (*entity.RSVPInvitation, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errRSVPLinkInvalid
	}

	invitation, err := s.rsvpRepo.Get(ctx, token)
	if err != nil {
		if domainerrors.IsNotFound(err) {
			return nil, errRSVPLinkInvalid
		}

		return nil, errors.Wrap(err, "failed to load invitation")
	}

	return invitation, nil
}

func (s *rsvpService) Submit(ctx context.Context, token string, submission *entity.RSVPSubmission) (*entity.RSVPInvitation, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errRSVPLinkInvalid
	}
	if submission == nil {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "status", Message: "is required"})
	}
	if err := validation.Struct(submission); err != nil {
		return nil, err
	}
	if submission.Status == entity.RSVPDeclined {
		submission.PlusOne = false
		submission.GuestCount = 0
	}

	invitation, err := s.rsvpRepo.Submit(ctx, token, submission)
	if err != nil {
		if domainerrors.IsNotFound(err) {
			return nil, errRSVPLinkInvalid
		}

		return nil, errors.Wrap(err, "failed to submit RSVP")
	}
	s.log(ctx).Info("RSVP submitted", slog.String("status", string(submission.Status)))

	return invitation, nil
}
