package store

import (
	"context"

	"syncarea.app/api-server/core/db/sqlc"
	"syncarea.app/api-server/internal/model"
)

type membershipStore struct {
	queries *sqlc.Queries
}

func newMembershipStore(queries *sqlc.Queries) MembershipStore {
	return &membershipStore{queries: queries}
}

// Add inserts the (user, workspace) pair. A duplicate pair surfaces as
// ErrConflict via the composite primary key, which is the race-safe guard.
func (s *membershipStore) Add(ctx context.Context, userID, workspaceID int64) (*model.Membership, error) {
	row, err := s.queries.CreateMembership(ctx, sqlc.CreateMembershipParams{
		UserID:      userID,
		WorkspaceID: workspaceID,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return &model.Membership{
		UserID:      row.UserID,
		WorkspaceID: row.WorkspaceID,
		CreatedAt:   row.CreatedAt.Time,
	}, nil
}

func (s *membershipStore) IsMember(ctx context.Context, userID, workspaceID int64) (bool, error) {
	return s.queries.MembershipExists(ctx, sqlc.MembershipExistsParams{
		UserID:      userID,
		WorkspaceID: workspaceID,
	})
}

func (s *membershipStore) Remove(ctx context.Context, userID, workspaceID int64) error {
	return s.queries.DeleteMembership(ctx, sqlc.DeleteMembershipParams{
		UserID:      userID,
		WorkspaceID: workspaceID,
	})
}

func (s *membershipStore) DeleteByUser(ctx context.Context, userID int64) error {
	return s.queries.DeleteMembershipsByUser(ctx, userID)
}

func (s *membershipStore) DeleteByWorkspace(ctx context.Context, workspaceID int64) error {
	return s.queries.DeleteMembershipsByWorkspace(ctx, workspaceID)
}
