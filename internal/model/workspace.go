package model

import "time"

// Workspace is the tenant unit. RoomNumber is globally unique; Password is an
// optional plaintext join code (credential hashing belongs to the identity
// provider, not this service).
type Workspace struct {
	ID         int64     `json:"id,string"`
	Name       string    `json:"name"`
	RoomNumber string    `json:"room_number"`
	Password   *string   `json:"password,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
