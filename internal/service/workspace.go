package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"syncarea.app/api-server/common/id"
	"syncarea.app/api-server/internal/imagepath"
	"syncarea.app/api-server/internal/model"
	"syncarea.app/api-server/internal/store"
)

type UpdateWorkspaceParams struct {
	Name       *string
	RoomNumber *string
	Password   *string
}

type WorkspaceService interface {
	Create(ctx context.Context, name, roomNumber string, password *string) (*model.Workspace, error)
	Get(ctx context.Context, id int64) (*model.Workspace, error)
	List(ctx context.Context, page, pageSize int) ([]model.Workspace, error)
	Update(ctx context.Context, id int64, params UpdateWorkspaceParams) (*model.Workspace, error)
	Delete(ctx context.Context, id int64) error
}

type workspaceService struct {
	stores   store.StoreProvider
	tx       store.TxRunner
	resolver *imagepath.Resolver
}

func NewWorkspaceService(stores store.StoreProvider, tx store.TxRunner, resolver *imagepath.Resolver) WorkspaceService {
	return &workspaceService{
		stores:   stores,
		tx:       tx,
		resolver: resolver,
	}
}

// Create inserts the workspace. Room-number uniqueness is enforced by the
// storage constraint; a violation surfaces as ErrRoomNumberTaken regardless
// of any concurrent creator.
func (s *workspaceService) Create(ctx context.Context, name, roomNumber string, password *string) (*model.Workspace, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if roomNumber == "" {
		return nil, fmt.Errorf("%w: room number is required", ErrValidation)
	}

	ws := &model.Workspace{
		ID:         id.New(),
		Name:       name,
		RoomNumber: roomNumber,
		Password:   password,
	}

	if err := s.stores.Workspaces().Create(ctx, ws); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, ErrRoomNumberTaken
		}
		return nil, fmt.Errorf("creating workspace: %w", err)
	}

	slog.InfoContext(ctx, "workspace created",
		"workspace_id", ws.ID,
		"room_number", ws.RoomNumber,
	)
	return ws, nil
}

func (s *workspaceService) Get(ctx context.Context, workspaceID int64) (*model.Workspace, error) {
	ws, err := s.stores.Workspaces().GetByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("getting workspace: %w", err)
	}
	return ws, nil
}

func (s *workspaceService) List(ctx context.Context, page, pageSize int) ([]model.Workspace, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 100
	}
	return s.stores.Workspaces().List(ctx, int32(pageSize), int32((page-1)*pageSize))
}

// Update renames the photo directory tree before the row commits. A failed
// rename aborts the update; a failed commit after a successful rename leaves
// the directory renamed with a stale record, which is logged as a
// reconciliation gap rather than silently hidden.
func (s *workspaceService) Update(ctx context.Context, workspaceID int64, params UpdateWorkspaceParams) (*model.Workspace, error) {
	var updated *model.Workspace

	err := s.tx.WithTx(ctx, func(stores store.StoreProvider) error {
		ws, err := stores.Workspaces().GetByID(ctx, workspaceID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrWorkspaceNotFound
			}
			return fmt.Errorf("getting workspace: %w", err)
		}

		next := *ws
		if params.Name != nil && *params.Name != "" {
			next.Name = *params.Name
		}
		if params.RoomNumber != nil && *params.RoomNumber != "" {
			next.RoomNumber = *params.RoomNumber
		}
		if params.Password != nil && *params.Password != "" {
			next.Password = params.Password
		}

		if next.Name != ws.Name || next.RoomNumber != ws.RoomNumber {
			if err := s.moveWorkspaceDir(ctx, ws, &next); err != nil {
				return err
			}
		}

		if err := stores.Workspaces().Update(ctx, &next); err != nil {
			if errors.Is(err, store.ErrConflict) {
				s.logRenameGap(ctx, ws, &next)
				return ErrRoomNumberTaken
			}
			if errors.Is(err, store.ErrNotFound) {
				return ErrWorkspaceNotFound
			}
			s.logRenameGap(ctx, ws, &next)
			return fmt.Errorf("updating workspace: %w", err)
		}

		updated = &next
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "workspace updated", "workspace_id", updated.ID)
	return updated, nil
}

// Delete removes the workspace's shares, photos, work items and memberships
// in one transaction, then its directory tree. The tree is scoped to
// {name}/{roomNumber}, so files of other workspaces are never touched.
func (s *workspaceService) Delete(ctx context.Context, workspaceID int64) error {
	var ws *model.Workspace

	err := s.tx.WithTx(ctx, func(stores store.StoreProvider) error {
		var err error
		ws, err = stores.Workspaces().GetByID(ctx, workspaceID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrWorkspaceNotFound
			}
			return fmt.Errorf("getting workspace: %w", err)
		}

		if err := stores.Shares().DeleteByWorkspace(ctx, workspaceID); err != nil {
			return fmt.Errorf("deleting shares: %w", err)
		}
		if err := stores.Photos().DeleteByWorkspace(ctx, workspaceID); err != nil {
			return fmt.Errorf("deleting photos: %w", err)
		}
		if err := stores.WorkItems().DeleteByWorkspace(ctx, workspaceID); err != nil {
			return fmt.Errorf("deleting work items: %w", err)
		}
		if err := stores.Memberships().DeleteByWorkspace(ctx, workspaceID); err != nil {
			return fmt.Errorf("deleting memberships: %w", err)
		}
		if err := stores.Workspaces().Delete(ctx, workspaceID); err != nil {
			return fmt.Errorf("deleting workspace: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Rows are gone; leftover files are an acceptable orphan, a dangling row
	// is not, hence removal strictly after commit.
	dir := s.resolver.WorkspaceDir(ws)
	if err := os.RemoveAll(dir); err != nil {
		slog.WarnContext(ctx, "failed to remove workspace directory",
			"error", err,
			"workspace_id", ws.ID,
			"dir", dir,
		)
	}
	// The shared name directory may now be empty; removal fails harmlessly
	// when a same-name workspace still uses it.
	_ = os.Remove(s.resolver.NameDir(ws.Name))

	slog.InfoContext(ctx, "workspace deleted", "workspace_id", ws.ID)
	return nil
}

func (s *workspaceService) moveWorkspaceDir(ctx context.Context, old, next *model.Workspace) error {
	oldDir := s.resolver.WorkspaceDir(old)
	newDir := s.resolver.WorkspaceDir(next)

	if _, err := os.Stat(oldDir); err != nil {
		if os.IsNotExist(err) {
			// No photos were ever stored; nothing to move.
			return nil
		}
		return fmt.Errorf("%w: inspecting %s: %v", ErrStorage, oldDir, err)
	}

	if err := os.MkdirAll(s.resolver.NameDir(next.Name), 0o755); err != nil {
		return fmt.Errorf("%w: preparing %s: %v", ErrStorage, newDir, err)
	}
	if err := os.Rename(oldDir, newDir); err != nil {
		return fmt.Errorf("%w: renaming %s to %s: %v", ErrStorage, oldDir, newDir, err)
	}
	_ = os.Remove(s.resolver.NameDir(old.Name))
	return nil
}

func (s *workspaceService) logRenameGap(ctx context.Context, old, next *model.Workspace) {
	if old.Name == next.Name && old.RoomNumber == next.RoomNumber {
		return
	}
	slog.WarnContext(ctx, "workspace directory renamed but record not committed; reconciliation needed",
		"workspace_id", old.ID,
		"old_dir", s.resolver.WorkspaceDir(old),
		"new_dir", s.resolver.WorkspaceDir(next),
	)
}
