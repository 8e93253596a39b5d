package usecase

import (
	"context"

	"planner/internal/domain/entity"
)

// RSVPUsecase defines the public reply flow. It is keyed by the RSVP token and needs no session.
type RSVPUsecase interface {
	GetInvitation(ctx context.Context, token string) (*entity.RSVPInvitation, error)
	Submit(ctx context.Context, token string, submission *entity.RSVPSubmission) (*entity.RSVPInvitation, error)
}
