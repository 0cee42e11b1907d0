package model

import "time"

// Share is a time-bounded external link onto a workspace. Expiry is enforced
// at read time; there is no background sweeper.
type Share struct {
	ID          int64     `json:"id,string"`
	WorkspaceID int64     `json:"workspace_id,string"`
	Token       string    `json:"token"`
	ExpiresAt   time.Time `json:"expires_at"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
