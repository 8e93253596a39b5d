// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"planner/internal/domain/entity"
)

// SessionProvider owns the cached session. It is the single place the bearer
// token is read from and the one the API client invalidates on a 401.
type SessionProvider interface {
	// Token returns the cached bearer token, if any.
	Token(ctx context.Context) (string, bool)

	// Invalidate drops the token and the cached profile.
	Invalidate(ctx context.Context) error

	// Cached returns the cached session or repository.ErrSessionNotFound.
	Cached(ctx context.Context) (*entity.CachedSession, error)

	// Store replaces the cached session with token and profile.
	Store(ctx context.Context, token string, profile *entity.User) error

	// StoreProfile refreshes the cached profile and its timestamp, keeping the token.
	StoreProfile(ctx context.Context, profile *entity.User) error
}
