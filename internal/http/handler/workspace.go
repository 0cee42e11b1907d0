package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"syncarea.app/api-server/internal/http/dto"
	"syncarea.app/api-server/internal/http/middleware"
	"syncarea.app/api-server/internal/service"
)

type WorkspaceHandler struct {
	workspaces  service.WorkspaceService
	memberships service.MembershipService
}

func NewWorkspaceHandler(workspaces service.WorkspaceService, memberships service.MembershipService) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspaces:  workspaces,
		memberships: memberships,
	}
}

func (h *WorkspaceHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ws, err := h.workspaces.Create(ctx, req.Name, req.RoomNumber, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoomNumberTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "room number already exists"})
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			slog.ErrorContext(ctx, "failed to create workspace", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create workspace"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToWorkspaceResponse(ws))
}

func (h *WorkspaceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "100"))

	list, err := h.workspaces.List(ctx, page, pageSize)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list workspaces", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list workspaces"})
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponses(list))
}

func (h *WorkspaceHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, err := strconv.ParseInt(c.Param("workspace_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workspace id"})
		return
	}

	ws, err := h.workspaces.Get(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, service.ErrWorkspaceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "workspace not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to get workspace", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get workspace"})
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(ws))
}

func (h *WorkspaceHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, err := strconv.ParseInt(c.Param("workspace_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workspace id"})
		return
	}

	var req dto.UpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ws, err := h.workspaces.Update(ctx, workspaceID, service.UpdateWorkspaceParams{
		Name:       req.Name,
		RoomNumber: req.RoomNumber,
		Password:   req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWorkspaceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "workspace not found"})
		case errors.Is(err, service.ErrRoomNumberTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "room number already exists"})
		case errors.Is(err, service.ErrStorage):
			slog.ErrorContext(ctx, "failed to move workspace directory", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update workspace"})
		default:
			slog.ErrorContext(ctx, "failed to update workspace", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update workspace"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(ws))
}

func (h *WorkspaceHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, err := strconv.ParseInt(c.Param("workspace_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workspace id"})
		return
	}

	if err := h.workspaces.Delete(ctx, workspaceID); err != nil {
		if errors.Is(err, service.ErrWorkspaceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "workspace not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to delete workspace", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete workspace"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "workspace deleted"})
}

func (h *WorkspaceHandler) Join(c *gin.Context) {
	ctx := c.Request.Context()

	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}

	var req dto.JoinWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ws, err := h.memberships.Join(ctx, p.UserID, req.RoomNumber, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWorkspaceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "workspace not found"})
		case errors.Is(err, service.ErrWrongPassword):
			c.JSON(http.StatusForbidden, gin.H{"error": "wrong password"})
		case errors.Is(err, service.ErrAlreadyMember):
			c.JSON(http.StatusConflict, gin.H{"error": "already a member"})
		default:
			slog.ErrorContext(ctx, "failed to join workspace", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to join workspace"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(ws))
}

func (h *WorkspaceHandler) MyWorkspaces(c *gin.Context) {
	ctx := c.Request.Context()

	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}

	list, err := h.memberships.ListUserWorkspaces(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to list user workspaces", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list workspaces"})
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponses(list))
}
