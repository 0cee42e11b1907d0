package model

import "time"

// WorkItem is a dated record of work done in a workspace. Relations are
// identifier-based only; creator and workspace are resolved through explicit
// queries, never embedded back-pointers.
type WorkItem struct {
	ID          int64     `json:"id,string"`
	WorkspaceID int64     `json:"workspace_id,string"`
	UserID      int64     `json:"user_id,string"`
	Date        time.Time `json:"date"`
	Remark      *string   `json:"remark,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Photo is a filesystem-backed image attached to a work item. Only the stored
// filename is persisted; the public URL is recomputed on read so workspace
// renames stay consistent without rewriting rows.
type Photo struct {
	ID         int64     `json:"id,string"`
	WorkItemID int64     `json:"work_item_id,string"`
	FileName   string    `json:"file_name"`
	CreatedAt  time.Time `json:"created_at"`
}
