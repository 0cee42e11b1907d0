package handler_test

import (
	"context"
	"time"

	"syncarea.app/api-server/internal/model"
	"syncarea.app/api-server/internal/service"
	"syncarea.app/api-server/internal/store"
)

type mockWorkspaceService struct {
	createFn func(ctx context.Context, name, roomNumber string, password *string) (*model.Workspace, error)
	getFn    func(ctx context.Context, id int64) (*model.Workspace, error)
	listFn   func(ctx context.Context, page, pageSize int) ([]model.Workspace, error)
	updateFn func(ctx context.Context, id int64, params service.UpdateWorkspaceParams) (*model.Workspace, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockWorkspaceService) Create(ctx context.Context, name, roomNumber string, password *string) (*model.Workspace, error) {
	if m.createFn != nil {
		return m.createFn(ctx, name, roomNumber, password)
	}
	return &model.Workspace{}, nil
}

func (m *mockWorkspaceService) Get(ctx context.Context, id int64) (*model.Workspace, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return &model.Workspace{}, nil
}

func (m *mockWorkspaceService) List(ctx context.Context, page, pageSize int) ([]model.Workspace, error) {
	if m.listFn != nil {
		return m.listFn(ctx, page, pageSize)
	}
	return nil, nil
}

func (m *mockWorkspaceService) Update(ctx context.Context, id int64, params service.UpdateWorkspaceParams) (*model.Workspace, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, params)
	}
	return &model.Workspace{}, nil
}

func (m *mockWorkspaceService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockMembershipService struct {
	joinFn               func(ctx context.Context, userID int64, roomNumber, password string) (*model.Workspace, error)
	addFn                func(ctx context.Context, userID, workspaceID int64) error
	removeFn             func(ctx context.Context, userID, workspaceID int64) error
	listUserWorkspacesFn func(ctx context.Context, userID int64) ([]model.Workspace, error)
}

func (m *mockMembershipService) Join(ctx context.Context, userID int64, roomNumber, password string) (*model.Workspace, error) {
	if m.joinFn != nil {
		return m.joinFn(ctx, userID, roomNumber, password)
	}
	return &model.Workspace{}, nil
}

func (m *mockMembershipService) Add(ctx context.Context, userID, workspaceID int64) error {
	if m.addFn != nil {
		return m.addFn(ctx, userID, workspaceID)
	}
	return nil
}

func (m *mockMembershipService) Remove(ctx context.Context, userID, workspaceID int64) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, userID, workspaceID)
	}
	return nil
}

func (m *mockMembershipService) ListUserWorkspaces(ctx context.Context, userID int64) ([]model.Workspace, error) {
	if m.listUserWorkspacesFn != nil {
		return m.listUserWorkspacesFn(ctx, userID)
	}
	return nil, nil
}

type mockWorkItemService struct {
	createFn func(ctx context.Context, params service.CreateWorkItemParams) (*service.WorkItemView, error)
	listFn   func(ctx context.Context, workspaceID int64) ([]service.WorkItemView, error)
}

func (m *mockWorkItemService) Create(ctx context.Context, params service.CreateWorkItemParams) (*service.WorkItemView, error) {
	if m.createFn != nil {
		return m.createFn(ctx, params)
	}
	return &service.WorkItemView{}, nil
}

func (m *mockWorkItemService) ListByWorkspace(ctx context.Context, workspaceID int64) ([]service.WorkItemView, error) {
	if m.listFn != nil {
		return m.listFn(ctx, workspaceID)
	}
	return nil, nil
}

type mockUserService struct {
	createFn func(ctx context.Context, params service.CreateUserParams) (*model.User, error)
	getFn    func(ctx context.Context, id int64) (*model.User, error)
	listFn   func(ctx context.Context, page, pageSize int) ([]model.User, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockUserService) Create(ctx context.Context, params service.CreateUserParams) (*model.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, params)
	}
	return &model.User{}, nil
}

func (m *mockUserService) Get(ctx context.Context, id int64) (*model.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return &model.User{}, nil
}

func (m *mockUserService) List(ctx context.Context, page, pageSize int) ([]model.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx, page, pageSize)
	}
	return nil, nil
}

func (m *mockUserService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockShareService struct {
	createFn       func(ctx context.Context, workspaceID int64, expiresAt time.Time) (*model.Share, error)
	listFn         func(ctx context.Context, page, pageSize int) ([]store.ShareWithWorkspace, error)
	resolveFn      func(ctx context.Context, token string) (*model.Workspace, error)
	revokeFn       func(ctx context.Context, shareID int64) error
	updateExpiryFn func(ctx context.Context, shareID int64, expiresAt time.Time) (*model.Share, error)
	deleteFn       func(ctx context.Context, shareID int64) error
}

func (m *mockShareService) Create(ctx context.Context, workspaceID int64, expiresAt time.Time) (*model.Share, error) {
	if m.createFn != nil {
		return m.createFn(ctx, workspaceID, expiresAt)
	}
	return &model.Share{}, nil
}

func (m *mockShareService) List(ctx context.Context, page, pageSize int) ([]store.ShareWithWorkspace, error) {
	if m.listFn != nil {
		return m.listFn(ctx, page, pageSize)
	}
	return nil, nil
}

func (m *mockShareService) Resolve(ctx context.Context, token string) (*model.Workspace, error) {
	if m.resolveFn != nil {
		return m.resolveFn(ctx, token)
	}
	return &model.Workspace{}, nil
}

func (m *mockShareService) Revoke(ctx context.Context, shareID int64) error {
	if m.revokeFn != nil {
		return m.revokeFn(ctx, shareID)
	}
	return nil
}

func (m *mockShareService) UpdateExpiry(ctx context.Context, shareID int64, expiresAt time.Time) (*model.Share, error) {
	if m.updateExpiryFn != nil {
		return m.updateExpiryFn(ctx, shareID, expiresAt)
	}
	return &model.Share{}, nil
}

func (m *mockShareService) Delete(ctx context.Context, shareID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, shareID)
	}
	return nil
}
