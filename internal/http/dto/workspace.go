package dto

import (
	"time"

	"syncarea.app/api-server/internal/model"
)

type CreateWorkspaceRequest struct {
	Name       string  `json:"name" binding:"required,min=1,max=255"`
	RoomNumber string  `json:"room_number" binding:"required,min=1,max=64"`
	Password   *string `json:"password,omitempty" binding:"omitempty,max=255"`
}

type UpdateWorkspaceRequest struct {
	Name       *string `json:"name,omitempty" binding:"omitempty,max=255"`
	RoomNumber *string `json:"room_number,omitempty" binding:"omitempty,max=64"`
	Password   *string `json:"password,omitempty" binding:"omitempty,max=255"`
}

type JoinWorkspaceRequest struct {
	RoomNumber string `json:"room_number" binding:"required"`
	Password   string `json:"password"`
}

type WorkspaceResponse struct {
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Name       string    `json:"name"`
	RoomNumber string    `json:"room_number"`
	ID         int64     `json:"id,string"`
}

func ToWorkspaceResponse(ws *model.Workspace) *WorkspaceResponse {
	return &WorkspaceResponse{
		ID:         ws.ID,
		Name:       ws.Name,
		RoomNumber: ws.RoomNumber,
		CreatedAt:  ws.CreatedAt,
		UpdatedAt:  ws.UpdatedAt,
	}
}

func ToWorkspaceResponses(list []model.Workspace) []WorkspaceResponse {
	out := make([]WorkspaceResponse, len(list))
	for i := range list {
		out[i] = *ToWorkspaceResponse(&list[i])
	}
	return out
}
