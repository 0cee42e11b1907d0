package store

import (
	"context"
	"errors"
	"time"

	"syncarea.app/api-server/internal/model"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a storage-layer uniqueness constraint
	// rejects a write (duplicate room number, duplicate membership pair).
	// The constraint is the authoritative guard; callers must not rely on
	// check-then-act.
	ErrConflict = errors.New("conflict")
)

type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int32) ([]model.User, error)
}

type WorkspaceStore interface {
	GetByID(ctx context.Context, id int64) (*model.Workspace, error)
	GetByRoomNumber(ctx context.Context, roomNumber string) (*model.Workspace, error)
	Create(ctx context.Context, ws *model.Workspace) error
	Update(ctx context.Context, ws *model.Workspace) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int32) ([]model.Workspace, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Workspace, error)
}

type MembershipStore interface {
	Add(ctx context.Context, userID, workspaceID int64) (*model.Membership, error)
	IsMember(ctx context.Context, userID, workspaceID int64) (bool, error)
	Remove(ctx context.Context, userID, workspaceID int64) error
	DeleteByUser(ctx context.Context, userID int64) error
	DeleteByWorkspace(ctx context.Context, workspaceID int64) error
}

// WorkItemWithCreator carries the creator's display name alongside the item
// so list views need no second round trip.
type WorkItemWithCreator struct {
	model.WorkItem
	CreatorName string
}

type WorkItemStore interface {
	Create(ctx context.Context, item *model.WorkItem) error
	ListByWorkspace(ctx context.Context, workspaceID int64) ([]WorkItemWithCreator, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	DeleteByWorkspace(ctx context.Context, workspaceID int64) error
}

type PhotoStore interface {
	Create(ctx context.Context, photo *model.Photo) error
	ListByWorkItem(ctx context.Context, workItemID int64) ([]model.Photo, error)
	ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Photo, error)
	DeleteByWorkItem(ctx context.Context, workItemID int64) error
	DeleteByWorkspace(ctx context.Context, workspaceID int64) error
}

type ShareWithWorkspace struct {
	model.Share
	WorkspaceName string
}

type ShareStore interface {
	GetByID(ctx context.Context, id int64) (*model.Share, error)
	// GetByToken resolves only active, unexpired shares; expiry is enforced
	// here at read time rather than by a sweeper.
	GetByToken(ctx context.Context, token string) (*model.Share, error)
	Create(ctx context.Context, share *model.Share) error
	SetActive(ctx context.Context, id int64, active bool) error
	UpdateExpiry(ctx context.Context, id int64, expiresAt time.Time) (*model.Share, error)
	Delete(ctx context.Context, id int64) error
	DeleteByWorkspace(ctx context.Context, workspaceID int64) error
	List(ctx context.Context, limit, offset int32) ([]ShareWithWorkspace, error)
}

// StoreProvider hands out entity stores bound to one execution scope (the
// pool, or a single transaction inside WithTx).
type StoreProvider interface {
	Users() UserStore
	Workspaces() WorkspaceStore
	Memberships() MembershipStore
	WorkItems() WorkItemStore
	Photos() PhotoStore
	Shares() ShareStore
}

// TxRunner executes fn inside one database transaction. The provider passed
// to fn is only valid for the duration of the call; returning an error rolls
// everything back.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(StoreProvider) error) error
}
