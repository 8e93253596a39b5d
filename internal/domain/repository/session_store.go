package repository

import (
	"context"
	"errors"

	"planner/internal/domain/entity"
)

// ErrSessionNotFound is returned when nothing is cached.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists the bearer token and the last fetched profile between runs.
type SessionStore interface {
	// Load returns the cached session or ErrSessionNotFound.
	Load(ctx context.Context) (*entity.CachedSession, error)

	// Save replaces the cached session.
	Save(ctx context.Context, session *entity.CachedSession) error

	// Clear removes the token and the profile.
	Clear(ctx context.Context) error
}
