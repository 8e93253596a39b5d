package api

import (
	"context"
	"net/http"
	"strconv"

	"planner/internal/domain/entity"
	"planner/internal/domain/repository"
)

const (
	defaultPageSize = 100
	maxPages        = 1000
)

type guestRepository struct {
	client *Client
}

// NewGuestRepository is the constructor for the remote GuestRepository.
func NewGuestRepository(client *Client) repository.GuestRepository {
	return &guestRepository{client: client}
}

func (r *guestRepository) List(ctx context.Context, page entity.Page) ([]entity.Guest, *entity.PageMeta, error) {
	if page.Page <= 0 {
		page.Page = 1
	}
	if page.Limit <= 0 {
		page.Limit = defaultPageSize
	}
	ep := Path("/api/v1/invites").
		WithQuery("page", strconv.Itoa(page.Page)).
		WithQuery("limit", strconv.Itoa(page.Limit))

	var out []entity.Guest
	meta, err := r.client.Do(ctx, http.MethodGet, ep, nil, &out)
	if err != nil {
		return nil, nil, err
	}

	return out, meta, nil
}

func (r *guestRepository) ListAll(ctx context.Context) ([]entity.Guest, error) {
	var all []entity.Guest
	for page := 1; page <= maxPages; page++ {
		guests, meta, err := r.List(ctx, entity.Page{Page: page, Limit: defaultPageSize})
		if err != nil {
			return nil, err
		}
		all = append(all, guests...)
		if !meta.HasNext() || len(guests) == 0 {
			break
		}
	}

	return all, nil
}

type createGuestsRequest struct {
	Guests []entity.NewGuest `json:"guests"`
}

func (r *guestRepository) Create(ctx context.Context, guests []entity.NewGuest) ([]entity.Guest, error) {
	var out []entity.Guest
	if _, err := r.client.Do(ctx, http.MethodPost, Path("/api/v1/invites"), createGuestsRequest{Guests: guests}, &out); err != nil {
		return nil, err
	}

	return out, nil
}

type sendInvitationsRequest struct {
	GuestIDs []string `json:"guestIds"`
}

func (r *guestRepository) SendInvitations(ctx context.Context, guestIDs []string) (*entity.InvitationBatchResult, error) {
	var out entity.InvitationBatchResult
	if _, err := r.client.Do(ctx, http.MethodPost, Path("/api/v1/invites/send"), sendInvitationsRequest{GuestIDs: guestIDs}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

type rsvpRepository struct {
	client *Client
}

// NewRSVPRepository is the constructor for the remote RSVPRepository.
func NewRSVPRepository(client *Client) repository.RSVPRepository {
	return &rsvpRepository{client: client}
}

func (r *rsvpRepository) Get(ctx context.Context, token string) (*entity.RSVPInvitation, error) {
	var out entity.RSVPInvitation
	if _, err := r.client.Do(ctx, http.MethodGet, Path("/api/v1/rsvp/:token", token), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (r *rsvpRepository) Submit(ctx context.Context, token string, submission *entity.RSVPSubmission) (*entity.RSVPInvitation, error) {
	var out entity.RSVPInvitation
	if _, err := r.client.Do(ctx, http.MethodPost, Path("/api/v1/rsvp/:token", token), submission, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
