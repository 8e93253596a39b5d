package usecase

import (
	"context"

	"planner/internal/domain/entity"
	"planner/internal/domain/view"
)

// SendFailure is one guest whose invitation was not delivered.
type SendFailure struct {
	GuestID string `json:"guestId"`
	Reason  string `json:"reason"`
}

// BulkSendReport summarizes a bulk invitation send.
type BulkSendReport struct {
	Requested int           `json:"requested"`
	Sent      []string      `json:"sent"`
	Failed    []SendFailure `json:"failed"`
	// Provisional is set when the server only acknowledged the batch and
	// the sent guests were marked locally without a per-guest confirmation.
	Provisional bool `json:"provisional"`
}

// GuestUsecase defines the guest list and invitation use cases.
type GuestUsecase interface {
	// ListGuests reloads every page of guests and returns the filtered view.
	ListGuests(ctx context.Context, filter view.GuestFilter) (*view.GuestView, error)

	// AddGuests validates and creates guests in one call.
	AddGuests(ctx context.Context, guests []entity.NewGuest) ([]entity.Guest, error)

	// SendInvitations sends invitations to ids and reconciles the local roster.
	SendInvitations(ctx context.Context, ids []string) (*BulkSendReport, error)

	// RemoveGuest drops a guest from the local roster only; the server keeps it.
	RemoveGuest(ctx context.Context, id string) error

	// InvitationQR renders the guest's RSVP link as a PNG QR code.
	InvitationQR(ctx context.Context, id string) ([]byte, error)
}
