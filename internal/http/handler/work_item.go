package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"syncarea.app/api-server/internal/http/dto"
	"syncarea.app/api-server/internal/http/middleware"
	"syncarea.app/api-server/internal/service"
)

const dateLayout = "2006-01-02"

type WorkItemHandler struct {
	workItems service.WorkItemService
}

func NewWorkItemHandler(workItems service.WorkItemService) *WorkItemHandler {
	return &WorkItemHandler{workItems: workItems}
}

// Create accepts a multipart form: date (required, 2006-01-02), optional
// remark, and any number of images[] parts. The creator is the authenticated
// principal; the workspace comes from the path.
func (h *WorkItemHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}

	workspaceID, err := strconv.ParseInt(c.Param("workspace_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workspace id"})
		return
	}

	var form dto.CreateWorkItemForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse(dateLayout, form.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as 2006-01-02"})
		return
	}

	images, err := readImages(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded images"})
		return
	}

	view, err := h.workItems.Create(ctx, service.CreateWorkItemParams{
		UserID:      p.UserID,
		WorkspaceID: workspaceID,
		Remark:      form.Remark,
		Date:        date,
		Images:      images,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWorkspaceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "workspace not found"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrStorage):
			slog.ErrorContext(ctx, "failed to store work item photos", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store photos"})
		default:
			slog.ErrorContext(ctx, "failed to create work item", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create work item"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToWorkItemResponse(view))
}

func (h *WorkItemHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, err := strconv.ParseInt(c.Param("workspace_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workspace id"})
		return
	}

	views, err := h.workItems.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, service.ErrWorkspaceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "workspace not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to list work items", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list work items"})
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkItemResponses(views))
}

func readImages(c *gin.Context) ([]service.ImageUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	var images []service.ImageUpload
	for _, fh := range form.File["images[]"] {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		images = append(images, service.ImageUpload{
			FileName: fh.Filename,
			Data:     data,
		})
	}
	return images, nil
}
