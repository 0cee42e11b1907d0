package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"syncarea.app/api-server/common/id"
	"syncarea.app/api-server/internal/model"
	"syncarea.app/api-server/internal/store"
)

type CreateUserParams struct {
	Username     string
	Name         *string
	Role         model.Role
	WorkspaceIDs []int64
}

type UserService interface {
	Create(ctx context.Context, params CreateUserParams) (*model.User, error)
	Get(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context, page, pageSize int) ([]model.User, error)
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	stores store.StoreProvider
	tx     store.TxRunner
}

func NewUserService(stores store.StoreProvider, tx store.TxRunner) UserService {
	return &userService{stores: stores, tx: tx}
}

// Create inserts the user and enrolls them into the requested workspaces.
// Workspace identifiers that resolve to nothing are skipped rather than
// failing the whole creation.
func (s *userService) Create(ctx context.Context, params CreateUserParams) (*model.User, error) {
	if params.Username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if params.Role == "" {
		params.Role = model.RoleUser
	}
	if !params.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, params.Role)
	}

	user := &model.User{
		ID:       id.New(),
		Username: params.Username,
		Name:     params.Name,
		Role:     params.Role,
	}

	err := s.tx.WithTx(ctx, func(stores store.StoreProvider) error {
		if err := stores.Users().Create(ctx, user); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return ErrUsernameTaken
			}
			return fmt.Errorf("creating user: %w", err)
		}

		for _, wsID := range params.WorkspaceIDs {
			if _, err := stores.Workspaces().GetByID(ctx, wsID); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					slog.WarnContext(ctx, "skipping unknown workspace during user creation",
						"workspace_id", wsID,
						"username", params.Username,
					)
					continue
				}
				return fmt.Errorf("getting workspace: %w", err)
			}
			if _, err := stores.Memberships().Add(ctx, user.ID, wsID); err != nil {
				if errors.Is(err, store.ErrConflict) {
					continue
				}
				return fmt.Errorf("adding membership: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "user created", "user_id", user.ID, "username", user.Username)
	return user, nil
}

func (s *userService) Get(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.stores.Users().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, page, pageSize int) ([]model.User, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 100
	}
	return s.stores.Users().List(ctx, int32(pageSize), int32((page-1)*pageSize))
}

// Delete removes the user and their memberships. A user who still owns work
// items cannot be deleted; their items would lose their creator.
func (s *userService) Delete(ctx context.Context, userID int64) error {
	err := s.tx.WithTx(ctx, func(stores store.StoreProvider) error {
		if _, err := stores.Users().GetByID(ctx, userID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("getting user: %w", err)
		}

		count, err := stores.WorkItems().CountByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("counting work items: %w", err)
		}
		if count > 0 {
			return ErrUserHasWorkItems
		}

		if err := stores.Memberships().DeleteByUser(ctx, userID); err != nil {
			return fmt.Errorf("deleting memberships: %w", err)
		}
		if err := stores.Users().Delete(ctx, userID); err != nil {
			return fmt.Errorf("deleting user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "user deleted", "user_id", userID)
	return nil
}
