package router

import (
	"github.com/gin-gonic/gin"

	"syncarea.app/api-server/internal/http/handler"
)

// WorkspaceMemberRouter covers routes inside one workspace; the group carries
// the membership gate.
func WorkspaceMemberRouter(rg *gin.RouterGroup, ws *handler.WorkspaceHandler, items *handler.WorkItemHandler) {
	rg.GET("", ws.Get)
	rg.GET("/work-items", items.List)
	rg.POST("/work-items", items.Create)
}

// WorkspaceAdminRouter covers registry management.
func WorkspaceAdminRouter(rg *gin.RouterGroup, h *handler.WorkspaceHandler) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.PATCH("/:workspace_id", h.Update)
	rg.DELETE("/:workspace_id", h.Delete)
}
