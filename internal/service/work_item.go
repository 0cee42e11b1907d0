package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"syncarea.app/api-server/common/id"
	"syncarea.app/api-server/internal/imagepath"
	"syncarea.app/api-server/internal/model"
	"syncarea.app/api-server/internal/store"
)

// ImageUpload is one image payload from the multipart request. Size caps are
// enforced by the upload UI; only presence is checked here.
type ImageUpload struct {
	FileName string
	Data     []byte
}

type CreateWorkItemParams struct {
	UserID      int64
	WorkspaceID int64
	Remark      *string
	Date        time.Time
	Images      []ImageUpload
}

// WorkItemView is the boundary-facing shape: creator resolved to a display
// name, photos resolved to public URLs against the workspace's current name
// and room number.
type WorkItemView struct {
	ID          int64     `json:"id,string"`
	Date        time.Time `json:"date"`
	Remark      *string   `json:"remark,omitempty"`
	CreatorName string    `json:"creator_name"`
	PhotoCount  int       `json:"photo_count"`
	PhotoURLs   []string  `json:"photo_urls"`
}

type WorkItemService interface {
	Create(ctx context.Context, params CreateWorkItemParams) (*WorkItemView, error)
	ListByWorkspace(ctx context.Context, workspaceID int64) ([]WorkItemView, error)
}

type workItemService struct {
	stores   store.StoreProvider
	tx       store.TxRunner
	resolver *imagepath.Resolver
}

func NewWorkItemService(stores store.StoreProvider, tx store.TxRunner, resolver *imagepath.Resolver) WorkItemService {
	return &workItemService{
		stores:   stores,
		tx:       tx,
		resolver: resolver,
	}
}

// Create validates both references before any side effect, writes every image
// file before its row, and commits the work item together with all photo rows
// in one transaction. The item identifier is generated up front so photo rows
// reference it without a second round trip.
//
// A failed write mid-batch removes every file written for this call and
// aborts with nothing committed: a photo row without a backing file must
// never exist. The reverse, an orphaned file when cleanup itself fails, is an
// accepted residual.
func (s *workItemService) Create(ctx context.Context, params CreateWorkItemParams) (*WorkItemView, error) {
	if params.UserID <= 0 {
		return nil, fmt.Errorf("%w: user identifier is required", ErrValidation)
	}
	if params.WorkspaceID <= 0 {
		return nil, fmt.Errorf("%w: workspace identifier is required", ErrValidation)
	}
	if params.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	}

	var view *WorkItemView

	err := s.tx.WithTx(ctx, func(stores store.StoreProvider) error {
		ws, err := stores.Workspaces().GetByID(ctx, params.WorkspaceID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrWorkspaceNotFound
			}
			return fmt.Errorf("getting workspace: %w", err)
		}

		user, err := stores.Users().GetByID(ctx, params.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("getting user: %w", err)
		}

		item := &model.WorkItem{
			ID:          id.New(),
			WorkspaceID: ws.ID,
			UserID:      user.ID,
			Date:        params.Date,
			Remark:      params.Remark,
		}

		photos, written, err := s.writeImages(ctx, ws, item.ID, params.Images)
		if err != nil {
			return err
		}

		if err := stores.WorkItems().Create(ctx, item); err != nil {
			s.cleanupFiles(ctx, written)
			return fmt.Errorf("creating work item: %w", err)
		}
		for i := range photos {
			if err := stores.Photos().Create(ctx, &photos[i]); err != nil {
				s.cleanupFiles(ctx, written)
				return fmt.Errorf("creating photo row: %w", err)
			}
		}

		urls := make([]string, len(photos))
		for i, p := range photos {
			urls[i] = s.resolver.WebURL(ws, p.FileName)
		}

		view = &WorkItemView{
			ID:          item.ID,
			Date:        item.Date,
			Remark:      item.Remark,
			CreatorName: user.DisplayName(),
			PhotoCount:  len(photos),
			PhotoURLs:   urls,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "work item created",
		"work_item_id", view.ID,
		"workspace_id", params.WorkspaceID,
		"photo_count", view.PhotoCount,
	)
	return view, nil
}

// ListByWorkspace returns the workspace's items ordered by date ascending.
// Photo URLs are recomputed against the workspace's current name and room
// number, so a rename after creation stays consistent without row rewrites.
func (s *workItemService) ListByWorkspace(ctx context.Context, workspaceID int64) ([]WorkItemView, error) {
	ws, err := s.stores.Workspaces().GetByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("getting workspace: %w", err)
	}

	items, err := s.stores.WorkItems().ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing work items: %w", err)
	}

	photos, err := s.stores.Photos().ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing photos: %w", err)
	}
	byItem := make(map[int64][]model.Photo)
	for _, p := range photos {
		byItem[p.WorkItemID] = append(byItem[p.WorkItemID], p)
	}

	views := make([]WorkItemView, len(items))
	for i, item := range items {
		itemPhotos := byItem[item.ID]
		urls := make([]string, len(itemPhotos))
		for j, p := range itemPhotos {
			urls[j] = s.resolver.WebURL(ws, p.FileName)
		}
		views[i] = WorkItemView{
			ID:          item.ID,
			Date:        item.Date,
			Remark:      item.Remark,
			CreatorName: item.CreatorName,
			PhotoCount:  len(itemPhotos),
			PhotoURLs:   urls,
		}
	}
	return views, nil
}

// writeImages persists every payload to the workspace's image directory and
// returns the photo rows to commit plus the paths written so far. On any
// failure the already-written files are removed before returning.
func (s *workItemService) writeImages(ctx context.Context, ws *model.Workspace, workItemID int64, images []ImageUpload) ([]model.Photo, []string, error) {
	if len(images) == 0 {
		return nil, nil, nil
	}

	dir, err := s.resolver.ImageDir(ws)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	photos := make([]model.Photo, 0, len(images))
	written := make([]string, 0, len(images))
	for _, img := range images {
		fileName := uuid.NewString() + imageExt(img.FileName)
		path := filepath.Join(dir, fileName)

		if err := os.WriteFile(path, img.Data, 0o644); err != nil {
			s.cleanupFiles(ctx, written)
			return nil, nil, fmt.Errorf("%w: writing %s: %v", ErrStorage, path, err)
		}
		written = append(written, path)

		photos = append(photos, model.Photo{
			ID:         id.New(),
			WorkItemID: workItemID,
			FileName:   fileName,
		})
	}
	return photos, written, nil
}

func (s *workItemService) cleanupFiles(ctx context.Context, paths []string) {
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			slog.WarnContext(ctx, "failed to clean up partial photo write",
				"error", err,
				"path", path,
			)
		}
	}
}

func imageExt(fileName string) string {
	if ext := filepath.Ext(fileName); ext != "" {
		return ext
	}
	return ".jpg"
}
