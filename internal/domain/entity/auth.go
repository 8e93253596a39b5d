package entity

import "time"

// Credentials identify an account at login. Login is either an email or a username.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Registration is the input of account creation.
type Registration struct {
	Email            string `json:"email" validate:"required,email"`
	Username         string `json:"username" validate:"required,username"`
	Name             string `json:"name" validate:"required,max=100"`
	Password         string `json:"password" validate:"required,min=8,max=128"`
	TelegramUsername string `json:"telegramUsername,omitempty" validate:"omitempty,telegram"`
}

// AuthResult is what the API returns on login or registration.
type AuthResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// CachedSession is the persisted session: the bearer token and the last profile seen.
type CachedSession struct {
	Token           string    // Bearer token, in the clear once loaded.
	Profile         *User     // Nil until a profile has been fetched.
	ProfileCachedAt time.Time // Zero when no profile is cached.
	UpdatedAt       time.Time
}
