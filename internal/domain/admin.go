package domain

import "time"

// Administrator represents an admin-panel account. The password hash is
// never serialized to clients.
type Administrator struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
