// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer:
// the remote wedding-planning API on one side, the local session cache on the other.
package repository

import (
	"context"

	"planner/internal/domain/entity"
)

// AuthRepository defines the account operations of the remote API.
type AuthRepository interface {
	// Login exchanges credentials for a bearer token and the account profile.
	Login(ctx context.Context, creds entity.Credentials) (*entity.AuthResult, error)

	// Register creates an account and signs it in.
	Register(ctx context.Context, reg entity.Registration) (*entity.AuthResult, error)

	// Me fetches the profile behind the current bearer token.
	Me(ctx context.Context) (*entity.User, error)

	// Logout ends the remote session.
	Logout(ctx context.Context) error
}
