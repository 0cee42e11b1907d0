package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"syncarea.app/api-server/internal/http/dto"
	"syncarea.app/api-server/internal/service"
)

type ShareHandler struct {
	shares    service.ShareService
	workItems service.WorkItemService
}

func NewShareHandler(shares service.ShareService, workItems service.WorkItemService) *ShareHandler {
	return &ShareHandler{
		shares:    shares,
		workItems: workItems,
	}
}

func (h *ShareHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workspaceID, err := strconv.ParseInt(req.WorkspaceID, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workspace id"})
		return
	}

	share, err := h.shares.Create(ctx, workspaceID, req.ExpiresAt)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWorkspaceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "workspace not found"})
		case errors.Is(err, service.ErrPastExpiry):
			c.JSON(http.StatusBadRequest, gin.H{"error": "expiry must be in the future"})
		default:
			slog.ErrorContext(ctx, "failed to create share", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create share"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToShareResponse(share))
}

func (h *ShareHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "100"))

	list, err := h.shares.List(ctx, page, pageSize)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list shares", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list shares"})
		return
	}

	c.JSON(http.StatusOK, dto.ToShareResponses(list))
}

func (h *ShareHandler) Revoke(c *gin.Context) {
	ctx := c.Request.Context()

	shareID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid share id"})
		return
	}

	if err := h.shares.Revoke(ctx, shareID); err != nil {
		if errors.Is(err, service.ErrShareNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "share not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to revoke share", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke share"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "share revoked"})
}

func (h *ShareHandler) UpdateExpiry(c *gin.Context) {
	ctx := c.Request.Context()

	shareID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid share id"})
		return
	}

	var req dto.UpdateShareExpiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	share, err := h.shares.UpdateExpiry(ctx, shareID, req.ExpiresAt)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrShareNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "share not found"})
		case errors.Is(err, service.ErrPastExpiry):
			c.JSON(http.StatusBadRequest, gin.H{"error": "expiry must be in the future"})
		default:
			slog.ErrorContext(ctx, "failed to update share expiry", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update share"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToShareResponse(share))
}

func (h *ShareHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	shareID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid share id"})
		return
	}

	if err := h.shares.Delete(ctx, shareID); err != nil {
		if errors.Is(err, service.ErrShareNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "share not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to delete share", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete share"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "share deleted"})
}

// Resolve is the public share-link endpoint: a live token yields the
// workspace and its work items, without any identity headers.
func (h *ShareHandler) Resolve(c *gin.Context) {
	ctx := c.Request.Context()

	ws, err := h.shares.Resolve(ctx, c.Param("token"))
	if err != nil {
		if errors.Is(err, service.ErrShareNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "share not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to resolve share", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve share"})
		return
	}

	items, err := h.workItems.ListByWorkspace(ctx, ws.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list shared work items", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve share"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"workspace":  dto.ToWorkspaceResponse(ws),
		"work_items": dto.ToWorkItemResponses(items),
	})
}
