package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"syncarea.app/api-server/core/db/sqlc"
	"syncarea.app/api-server/internal/model"
)

type shareStore struct {
	queries *sqlc.Queries
}

func newShareStore(queries *sqlc.Queries) ShareStore {
	return &shareStore{queries: queries}
}

func (s *shareStore) GetByID(ctx context.Context, id int64) (*model.Share, error) {
	row, err := s.queries.GetShare(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toShareModel(row), nil
}

func (s *shareStore) GetByToken(ctx context.Context, token string) (*model.Share, error) {
	row, err := s.queries.GetShareByToken(ctx, token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toShareModel(row), nil
}

func (s *shareStore) Create(ctx context.Context, share *model.Share) error {
	row, err := s.queries.CreateShare(ctx, sqlc.CreateShareParams{
		ID:          share.ID,
		WorkspaceID: share.WorkspaceID,
		Token:       share.Token,
		ExpiresAt:   pgtype.Timestamptz{Time: share.ExpiresAt, Valid: true},
	})
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}
	*share = *toShareModel(row)
	return nil
}

func (s *shareStore) SetActive(ctx context.Context, id int64, active bool) error {
	affected, err := s.queries.SetShareActive(ctx, sqlc.SetShareActiveParams{
		ID:       id,
		IsActive: active,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *shareStore) UpdateExpiry(ctx context.Context, id int64, expiresAt time.Time) (*model.Share, error) {
	row, err := s.queries.UpdateShareExpiry(ctx, sqlc.UpdateShareExpiryParams{
		ID:        id,
		ExpiresAt: pgtype.Timestamptz{Time: expiresAt, Valid: true},
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toShareModel(row), nil
}

func (s *shareStore) Delete(ctx context.Context, id int64) error {
	affected, err := s.queries.DeleteShare(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *shareStore) DeleteByWorkspace(ctx context.Context, workspaceID int64) error {
	return s.queries.DeleteSharesByWorkspace(ctx, workspaceID)
}

func (s *shareStore) List(ctx context.Context, limit, offset int32) ([]ShareWithWorkspace, error) {
	rows, err := s.queries.ListShares(ctx, sqlc.ListSharesParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}
	result := make([]ShareWithWorkspace, len(rows))
	for i, row := range rows {
		result[i] = ShareWithWorkspace{
			Share: model.Share{
				ID:          row.ID,
				WorkspaceID: row.WorkspaceID,
				Token:       row.Token,
				ExpiresAt:   row.ExpiresAt.Time,
				IsActive:    row.IsActive,
				CreatedAt:   row.CreatedAt.Time,
			},
			WorkspaceName: row.WorkspaceName,
		}
	}
	return result, nil
}

func toShareModel(row sqlc.Share) *model.Share {
	return &model.Share{
		ID:          row.ID,
		WorkspaceID: row.WorkspaceID,
		Token:       row.Token,
		ExpiresAt:   row.ExpiresAt.Time,
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt.Time,
	}
}
