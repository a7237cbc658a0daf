package domain

import "time"

// Shop is a registered jewelry shop. The connection string is the sole
// handle used to reach the shop's externally hosted catalog database; the
// panel never manages that database's lifecycle.
type Shop struct {
	ID               string    `json:"id"`
	OwnerID          string    `json:"ownerId"`
	Name             string    `json:"name"`
	Image            string    `json:"image,omitempty"`
	ConnectionString string    `json:"connectionString"`
	Description      string    `json:"description,omitempty"`
	Address          string    `json:"address,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	Email            string    `json:"email,omitempty"`
	Website          string    `json:"website,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
