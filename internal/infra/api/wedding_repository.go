package api

import (
	"context"
	"net/http"

	"planner/internal/domain/entity"
	"planner/internal/domain/repository"
)

type weddingRepository struct {
	client *Client
}

// NewWeddingRepository is the constructor for the remote WeddingRepository.
func NewWeddingRepository(client *Client) repository.WeddingRepository {
	return &weddingRepository{client: client}
}

func (r *weddingRepository) Get(ctx context.Context) (*entity.Wedding, error) {
	return r.call(ctx, http.MethodGet, nil)
}

func (r *weddingRepository) Create(ctx context.Context, wedding *entity.Wedding) (*entity.Wedding, error) {
	return r.call(ctx, http.MethodPost, wedding)
}

func (r *weddingRepository) Update(ctx context.Context, wedding *entity.Wedding) (*entity.Wedding, error) {
	return r.call(ctx, http.MethodPut, wedding)
}

func (r *weddingRepository) call(ctx context.Context, method string, body any) (*entity.Wedding, error) {
	var out entity.Wedding
	if _, err := r.client.Do(ctx, method, Path("/api/v1/wedding"), body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

type scheduleRepository struct {
	client *Client
}

// NewScheduleRepository is the constructor for the remote ScheduleRepository.
func NewScheduleRepository(client *Client) repository.ScheduleRepository {
	return &scheduleRepository{client: client}
}

type replaceScheduleRequest struct {
	Schedule []entity.ScheduleEvent `json:"schedule"`
}

func (r *scheduleRepository) Replace(ctx context.Context, events []entity.ScheduleEvent) ([]entity.ScheduleEvent, error) {
	if events == nil {
		events = []entity.ScheduleEvent{}
	}

	var out []entity.ScheduleEvent
	if _, err := r.client.Do(ctx, http.MethodPut, Path("/api/v1/schedule"), replaceScheduleRequest{Schedule: events}, &out); err != nil {
		return nil, err
	}
	if out == nil {
		// Servers that acknowledge without echoing keep what was sent.
		out = events
	}

	return out, nil
}

type updateStatusRequest struct {
	Status entity.EventStatus `json:"status"`
}

func (r *scheduleRepository) UpdateStatus(ctx context.Context, id string, status entity.EventStatus) (*entity.ScheduleEvent, error) {
	var out entity.ScheduleEvent
	if _, err := r.client.Do(ctx, http.MethodPatch, Path("/api/v1/schedule/:id", id), updateStatusRequest{Status: status}, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		out.ID = id
		out.Status = status
	}

	return &out, nil
}
