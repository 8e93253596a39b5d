package api

import (
	"context"
	"net/http"

	"planner/internal/domain/entity"
	"planner/internal/domain/repository"
)

type authRepository struct {
	client *Client
}

// NewAuthRepository is the constructor for the remote AuthRepository.
func NewAuthRepository(client *Client) repository.AuthRepository {
	return &authRepository{client: client}
}

func (r *authRepository) Login(ctx context.Context, creds entity.Credentials) (*entity.AuthResult, error) {
	var out entity.AuthResult
	if _, err := r.client.Do(ctx, http.MethodPost, Path("/api/v1/auth/login"), creds, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (r *authRepository) Register(ctx context.Context, reg entity.Registration) (*entity.AuthResult, error) {
	var out entity.AuthResult
	if _, err := r.client.Do(ctx, http.MethodPost, Path("/api/v1/auth/register"), reg, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (r *authRepository) Me(ctx context.Context) (*entity.User, error) {
	var out entity.User
	if _, err := r.client.Do(ctx, http.MethodGet, Path("/api/v1/auth/me"), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (r *authRepository) Logout(ctx context.Context) error {
	_, err := r.client.Do(ctx, http.MethodPost, Path("/api/v1/auth/logout"), nil, nil)

	return err
}
