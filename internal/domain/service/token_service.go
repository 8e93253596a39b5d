// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate rules that don't naturally fit within a single entity.
package service

import (
	"errors"
	"time"
)

// ErrMalformedToken is returned when a bearer token cannot be decoded.
var ErrMalformedToken = errors.New("malformed token")

// TokenInfo is what the client can read from a bearer token without verifying it.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time // Zero when the token carries no expiry.
}

// Expired reports whether the token is past its expiry at now.
func (i *TokenInfo) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && !now.Before(i.ExpiresAt)
}

// TokenInspector decodes bearer tokens client-side. It performs no signature
// check: the server stays the authority and this only spares a doomed request.
type TokenInspector interface {
	// Inspect decodes token, returning ErrMalformedToken when it is not a JWT.
	Inspect(token string) (*TokenInfo, error)
}

// TokenSealer protects the bearer token while it sits in the local cache.
type TokenSealer interface {
	// Seal encrypts plain for storage.
	Seal(plain string) (string, error)

	// Open reverses Seal.
	Open(sealed string) (string, error)
}
