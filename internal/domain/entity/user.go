// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the account that owns a wedding.
type User struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Username         string    `json:"username,omitempty"`
	Name             string    `json:"name"`
	TelegramUsername string    `json:"telegramUsername,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}
