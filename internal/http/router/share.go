package router

import (
	"github.com/gin-gonic/gin"

	"syncarea.app/api-server/internal/http/handler"
)

func ShareRouter(rg *gin.RouterGroup, h *handler.ShareHandler) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.POST("/:id/revoke", h.Revoke)
	rg.PATCH("/:id", h.UpdateExpiry)
	rg.DELETE("/:id", h.Delete)
}
