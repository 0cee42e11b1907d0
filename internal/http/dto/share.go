package dto

import (
	"time"

	"syncarea.app/api-server/internal/model"
	"syncarea.app/api-server/internal/store"
)

type CreateShareRequest struct {
	WorkspaceID string    `json:"workspace_id" binding:"required"`
	ExpiresAt   time.Time `json:"expires_at" binding:"required"`
}

type UpdateShareExpiryRequest struct {
	ExpiresAt time.Time `json:"expires_at" binding:"required"`
}

type ShareResponse struct {
	CreatedAt     time.Time `json:"created_at"`
	ExpiresAt     time.Time `json:"expires_at"`
	Token         string    `json:"token"`
	WorkspaceName string    `json:"workspace_name,omitempty"`
	ID            int64     `json:"id,string"`
	WorkspaceID   int64     `json:"workspace_id,string"`
	IsActive      bool      `json:"is_active"`
}

func ToShareResponse(sh *model.Share) *ShareResponse {
	return &ShareResponse{
		ID:          sh.ID,
		WorkspaceID: sh.WorkspaceID,
		Token:       sh.Token,
		ExpiresAt:   sh.ExpiresAt,
		IsActive:    sh.IsActive,
		CreatedAt:   sh.CreatedAt,
	}
}

func ToShareResponses(list []store.ShareWithWorkspace) []ShareResponse {
	out := make([]ShareResponse, len(list))
	for i := range list {
		out[i] = *ToShareResponse(&list[i].Share)
		out[i].WorkspaceName = list[i].WorkspaceName
	}
	return out
}
