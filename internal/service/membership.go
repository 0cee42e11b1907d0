package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"syncarea.app/api-server/internal/model"
	"syncarea.app/api-server/internal/store"
)

type MembershipService interface {
	// Join enrolls the caller into the workspace identified by room number,
	// after checking the workspace password.
	Join(ctx context.Context, userID int64, roomNumber, password string) (*model.Workspace, error)
	Add(ctx context.Context, userID, workspaceID int64) error
	Remove(ctx context.Context, userID, workspaceID int64) error
	ListUserWorkspaces(ctx context.Context, userID int64) ([]model.Workspace, error)
}

type membershipService struct {
	stores store.StoreProvider
}

func NewMembershipService(stores store.StoreProvider) MembershipService {
	return &membershipService{stores: stores}
}

func (s *membershipService) Join(ctx context.Context, userID int64, roomNumber, password string) (*model.Workspace, error) {
	if roomNumber == "" {
		return nil, fmt.Errorf("%w: room number is required", ErrValidation)
	}

	ws, err := s.stores.Workspaces().GetByRoomNumber(ctx, roomNumber)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("getting workspace by room number: %w", err)
	}

	if ws.Password != nil && *ws.Password != password {
		return nil, ErrWrongPassword
	}

	if _, err := s.stores.Memberships().Add(ctx, userID, ws.ID); err != nil {
		if errors.Is(err, store.ErrConflict) {
			// Joining twice lands in the same state; surface it so the
			// caller can tell, but nothing was changed.
			return nil, ErrAlreadyMember
		}
		return nil, fmt.Errorf("adding membership: %w", err)
	}

	slog.InfoContext(ctx, "user joined workspace",
		"user_id", userID,
		"workspace_id", ws.ID,
	)
	return ws, nil
}

func (s *membershipService) Add(ctx context.Context, userID, workspaceID int64) error {
	if _, err := s.stores.Users().GetByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("getting user: %w", err)
	}
	if _, err := s.stores.Workspaces().GetByID(ctx, workspaceID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrWorkspaceNotFound
		}
		return fmt.Errorf("getting workspace: %w", err)
	}

	if _, err := s.stores.Memberships().Add(ctx, userID, workspaceID); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return ErrAlreadyMember
		}
		return fmt.Errorf("adding membership: %w", err)
	}
	return nil
}

func (s *membershipService) Remove(ctx context.Context, userID, workspaceID int64) error {
	if err := s.stores.Memberships().Remove(ctx, userID, workspaceID); err != nil {
		return fmt.Errorf("removing membership: %w", err)
	}
	return nil
}

func (s *membershipService) ListUserWorkspaces(ctx context.Context, userID int64) ([]model.Workspace, error) {
	if _, err := s.stores.Users().GetByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return s.stores.Workspaces().ListByUser(ctx, userID)
}
