package usecase

import (
	"context"

	"planner/internal/domain/entity"
)

// UnauthenticatedReason tells why LoadSession found no usable session.
type UnauthenticatedReason string

const (
	ReasonNoToken     UnauthenticatedReason = "no_token"
	ReasonExpired     UnauthenticatedReason = "expired"
	ReasonUnreachable UnauthenticatedReason = "unreachable"
	ReasonRejected    UnauthenticatedReason = "rejected"
)

// SessionState is the outcome of LoadSession.
type SessionState struct {
	Authenticated bool                  `json:"authenticated"`
	User          *entity.User          `json:"user,omitempty"`
	Reason        UnauthenticatedReason `json:"reason,omitempty"`
	// Redirect is the sign-in route when unauthenticated.
	Redirect string `json:"redirect,omitempty"`
	// FromCache is set when the profile came from the local cache.
	FromCache bool `json:"fromCache"`
}

// LoginOutput is returned by Login and Register.
type LoginOutput struct {
	User *entity.User `json:"user"`
	// Redirect is the authenticated area route.
	Redirect string `json:"redirect"`
}

// AuthUsecase defines the session lifecycle of the signed-in account.
type AuthUsecase interface {
	// LoadSession resolves the current user from the cache, refreshing the profile when stale.
	LoadSession(ctx context.Context) (*SessionState, error)

	// Login exchanges credentials for a session.
	Login(ctx context.Context, creds entity.Credentials) (*LoginOutput, error)

	// Register creates an account and signs it in.
	Register(ctx context.Context, reg entity.Registration) (*LoginOutput, error)

	// Logout ends the session and returns the sign-in route.
	Logout(ctx context.Context) (string, error)
}
