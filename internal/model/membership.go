package model

import "time"

// Membership links a user to a workspace. The pair is the primary key; there
// is no ownership beyond the link itself.
type Membership struct {
	UserID      int64     `json:"user_id,string"`
	WorkspaceID int64     `json:"workspace_id,string"`
	CreatedAt   time.Time `json:"created_at"`
}
