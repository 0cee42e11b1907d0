package router

import (
	"github.com/gin-gonic/gin"

	"syncarea.app/api-server/internal/authz"
	"syncarea.app/api-server/internal/http/handler"
	"syncarea.app/api-server/internal/http/middleware"
	"syncarea.app/api-server/internal/service"
)

func SetupRoutes(router *gin.Engine, services *service.Services, evaluator *authz.Evaluator) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	workspaceHandler := handler.NewWorkspaceHandler(services.Workspaces(), services.Memberships())
	workItemHandler := handler.NewWorkItemHandler(services.WorkItems())
	userHandler := handler.NewUserHandler(services.Users())
	shareHandler := handler.NewShareHandler(services.Shares(), services.WorkItems())

	// Share links are the only surface reachable without identity headers.
	router.GET("/api/v1/shared/:token", shareHandler.Resolve)

	v1 := router.Group("/api/v1", middleware.Identity())
	{
		v1.POST("/workspaces/join", workspaceHandler.Join)
		v1.GET("/me/workspaces", workspaceHandler.MyWorkspaces)

		member := v1.Group("/workspaces/:workspace_id", middleware.WorkspaceMember(evaluator))
		WorkspaceMemberRouter(member, workspaceHandler, workItemHandler)

		admin := v1.Group("", middleware.AdminOnly())
		{
			WorkspaceAdminRouter(admin.Group("/workspaces"), workspaceHandler)
			UserRouter(admin.Group("/users"), userHandler)
			ShareRouter(admin.Group("/shares"), shareHandler)
		}
	}
}
