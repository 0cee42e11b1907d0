package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"syncarea.app/api-server/core/db/sqlc"
	"syncarea.app/api-server/internal/model"
)

type workItemStore struct {
	queries *sqlc.Queries
}

func newWorkItemStore(queries *sqlc.Queries) WorkItemStore {
	return &workItemStore{queries: queries}
}

func (s *workItemStore) Create(ctx context.Context, item *model.WorkItem) error {
	row, err := s.queries.CreateWorkItem(ctx, sqlc.CreateWorkItemParams{
		ID:          item.ID,
		WorkspaceID: item.WorkspaceID,
		UserID:      item.UserID,
		Date:        pgtype.Date{Time: item.Date, Valid: true},
		Remark:      item.Remark,
	})
	if err != nil {
		return err
	}
	*item = *toWorkItemModel(row)
	return nil
}

func (s *workItemStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]WorkItemWithCreator, error) {
	rows, err := s.queries.ListWorkItemsByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	result := make([]WorkItemWithCreator, len(rows))
	for i, row := range rows {
		result[i] = WorkItemWithCreator{
			WorkItem: model.WorkItem{
				ID:          row.ID,
				WorkspaceID: row.WorkspaceID,
				UserID:      row.UserID,
				Date:        row.Date.Time,
				Remark:      row.Remark,
				CreatedAt:   row.CreatedAt.Time,
			},
			CreatorName: row.CreatorName,
		}
	}
	return result, nil
}

func (s *workItemStore) CountByUser(ctx context.Context, userID int64) (int64, error) {
	return s.queries.CountWorkItemsByUser(ctx, userID)
}

func (s *workItemStore) DeleteByWorkspace(ctx context.Context, workspaceID int64) error {
	return s.queries.DeleteWorkItemsByWorkspace(ctx, workspaceID)
}

func toWorkItemModel(row sqlc.WorkItem) *model.WorkItem {
	return &model.WorkItem{
		ID:          row.ID,
		WorkspaceID: row.WorkspaceID,
		UserID:      row.UserID,
		Date:        row.Date.Time,
		Remark:      row.Remark,
		CreatedAt:   row.CreatedAt.Time,
	}
}
