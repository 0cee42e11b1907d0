package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"syncarea.app/api-server/common/id"
	"syncarea.app/api-server/internal/model"
	"syncarea.app/api-server/internal/store"
)

type ShareService interface {
	Create(ctx context.Context, workspaceID int64, expiresAt time.Time) (*model.Share, error)
	List(ctx context.Context, page, pageSize int) ([]store.ShareWithWorkspace, error)
	// Resolve exchanges a token for its workspace, honoring expiry and
	// revocation at read time.
	Resolve(ctx context.Context, token string) (*model.Workspace, error)
	Revoke(ctx context.Context, shareID int64) error
	UpdateExpiry(ctx context.Context, shareID int64, expiresAt time.Time) (*model.Share, error)
	Delete(ctx context.Context, shareID int64) error
}

type shareService struct {
	stores store.StoreProvider
}

func NewShareService(stores store.StoreProvider) ShareService {
	return &shareService{stores: stores}
}

func (s *shareService) Create(ctx context.Context, workspaceID int64, expiresAt time.Time) (*model.Share, error) {
	if !expiresAt.After(time.Now()) {
		return nil, ErrPastExpiry
	}

	ws, err := s.stores.Workspaces().GetByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("getting workspace: %w", err)
	}

	share := &model.Share{
		ID:          id.New(),
		WorkspaceID: ws.ID,
		Token:       uuid.NewString(),
		ExpiresAt:   expiresAt,
		IsActive:    true,
	}
	if err := s.stores.Shares().Create(ctx, share); err != nil {
		return nil, fmt.Errorf("creating share: %w", err)
	}

	slog.InfoContext(ctx, "share created",
		"share_id", share.ID,
		"workspace_id", ws.ID,
		"expires_at", share.ExpiresAt,
	)
	return share, nil
}

func (s *shareService) List(ctx context.Context, page, pageSize int) ([]store.ShareWithWorkspace, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 100
	}
	return s.stores.Shares().List(ctx, int32(pageSize), int32((page-1)*pageSize))
}

func (s *shareService) Resolve(ctx context.Context, token string) (*model.Workspace, error) {
	if token == "" {
		return nil, ErrShareNotFound
	}

	share, err := s.stores.Shares().GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrShareNotFound
		}
		return nil, fmt.Errorf("getting share by token: %w", err)
	}

	ws, err := s.stores.Workspaces().GetByID(ctx, share.WorkspaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrShareNotFound
		}
		return nil, fmt.Errorf("getting shared workspace: %w", err)
	}
	return ws, nil
}

func (s *shareService) Revoke(ctx context.Context, shareID int64) error {
	if err := s.stores.Shares().SetActive(ctx, shareID, false); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrShareNotFound
		}
		return fmt.Errorf("revoking share: %w", err)
	}
	return nil
}

func (s *shareService) UpdateExpiry(ctx context.Context, shareID int64, expiresAt time.Time) (*model.Share, error) {
	if !expiresAt.After(time.Now()) {
		return nil, ErrPastExpiry
	}

	share, err := s.stores.Shares().UpdateExpiry(ctx, shareID, expiresAt)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrShareNotFound
		}
		return nil, fmt.Errorf("updating share expiry: %w", err)
	}
	return share, nil
}

func (s *shareService) Delete(ctx context.Context, shareID int64) error {
	if err := s.stores.Shares().Delete(ctx, shareID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrShareNotFound
		}
		return fmt.Errorf("deleting share: %w", err)
	}
	return nil
}
