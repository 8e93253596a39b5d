package repository

import (
	"context"

	"planner/internal/domain/entity"
)

// GuestRepository defines the invite endpoints.
type GuestRepository interface {
	// List fetches one page of guests.
	List(ctx context.Context, page entity.Page) ([]entity.Guest, *entity.PageMeta, error)

	// ListAll walks every page and returns the guests in server order.
	ListAll(ctx context.Context) ([]entity.Guest, error)

	// Create adds guests in one call.
	Create(ctx context.Context, guests []entity.NewGuest) ([]entity.Guest, error)

	// SendInvitations asks the server to deliver invitations to guestIDs.
	SendInvitations(ctx context.Context, guestIDs []string) (*entity.InvitationBatchResult, error)
}

// RSVPRepository defines the public, token-keyed RSVP endpoints.
type RSVPRepository interface {
	Get(ctx context.Context, token string) (*entity.RSVPInvitation, error)
	Submit(ctx context.Context, token string, submission *entity.RSVPSubmission) (*entity.RSVPInvitation, error)
}
