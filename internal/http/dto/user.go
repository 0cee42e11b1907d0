package dto

import (
	"time"

	"syncarea.app/api-server/internal/model"
)

type CreateUserRequest struct {
	Username     string   `json:"username" binding:"required,min=1,max=255"`
	Name         *string  `json:"name,omitempty" binding:"omitempty,max=255"`
	Role         string   `json:"role" binding:"omitempty,oneof=user admin superadmin"`
	WorkspaceIDs []string `json:"workspace_ids,omitempty"`
}

type UserResponse struct {
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
	Name      *string   `json:"name,omitempty"`
	Role      string    `json:"role"`
	ID        int64     `json:"id,string"`
}

func ToUserResponse(u *model.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func ToUserResponses(list []model.User) []UserResponse {
	out := make([]UserResponse, len(list))
	for i := range list {
		out[i] = *ToUserResponse(&list[i])
	}
	return out
}
