package dto

import (
	"time"

	"syncarea.app/api-server/internal/service"
)

// CreateWorkItemForm binds the multipart form; image parts are read from the
// request separately.
type CreateWorkItemForm struct {
	Date   string  `form:"date" binding:"required"`
	Remark *string `form:"remark" binding:"omitempty,max=2000"`
}

type WorkItemResponse struct {
	Date        time.Time `json:"date"`
	Remark      *string   `json:"remark,omitempty"`
	CreatorName string    `json:"creator_name"`
	PhotoURLs   []string  `json:"photo_urls"`
	ID          int64     `json:"id,string"`
	PhotoCount  int       `json:"photo_count"`
}

func ToWorkItemResponse(v *service.WorkItemView) *WorkItemResponse {
	return &WorkItemResponse{
		ID:          v.ID,
		Date:        v.Date,
		Remark:      v.Remark,
		CreatorName: v.CreatorName,
		PhotoCount:  v.PhotoCount,
		PhotoURLs:   v.PhotoURLs,
	}
}

func ToWorkItemResponses(list []service.WorkItemView) []WorkItemResponse {
	out := make([]WorkItemResponse, len(list))
	for i := range list {
		out[i] = *ToWorkItemResponse(&list[i])
	}
	return out
}
