// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"planner/internal/domain/service"
	"planner/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtInspector reads claims from a JWT without verifying its signature.
// The client never holds the server's key, so expiry is a hint only.
type jwtInspector struct {
	parser *jwt.Parser
}

// NewJWTInspector is the constructor for jwtInspector.
func NewJWTInspector() service.TokenInspector {
	return &jwtInspector{parser: jwt.NewParser()}
}

// Inspect decodes the registered claims of token.
func (i *jwtInspector) Inspect(token string) (*service.TokenInfo, error) {
	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(service.ErrMalformedToken, err.Error())
	}

	info := &service.TokenInfo{}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, errors.Wrap(service.ErrMalformedToken, err.Error())
	}
	if exp != nil {
		info.ExpiresAt = exp.Time
	}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}

	return info, nil
}
