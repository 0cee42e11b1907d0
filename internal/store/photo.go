package store

import (
	"context"

	"syncarea.app/api-server/core/db/sqlc"
	"syncarea.app/api-server/internal/model"
)

type photoStore struct {
	queries *sqlc.Queries
}

func newPhotoStore(queries *sqlc.Queries) PhotoStore {
	return &photoStore{queries: queries}
}

func (s *photoStore) Create(ctx context.Context, photo *model.Photo) error {
	row, err := s.queries.CreatePhoto(ctx, sqlc.CreatePhotoParams{
		ID:         photo.ID,
		WorkItemID: photo.WorkItemID,
		FileName:   photo.FileName,
	})
	if err != nil {
		return err
	}
	*photo = *toPhotoModel(row)
	return nil
}

func (s *photoStore) ListByWorkItem(ctx context.Context, workItemID int64) ([]model.Photo, error) {
	rows, err := s.queries.ListPhotosByWorkItem(ctx, workItemID)
	if err != nil {
		return nil, err
	}
	return toPhotoModels(rows), nil
}

func (s *photoStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Photo, error) {
	rows, err := s.queries.ListPhotosByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	return toPhotoModels(rows), nil
}

func (s *photoStore) DeleteByWorkItem(ctx context.Context, workItemID int64) error {
	return s.queries.DeletePhotosByWorkItem(ctx, workItemID)
}

func (s *photoStore) DeleteByWorkspace(ctx context.Context, workspaceID int64) error {
	return s.queries.DeletePhotosByWorkspace(ctx, workspaceID)
}

func toPhotoModel(row sqlc.Photo) *model.Photo {
	return &model.Photo{
		ID:         row.ID,
		WorkItemID: row.WorkItemID,
		FileName:   row.FileName,
		CreatedAt:  row.CreatedAt.Time,
	}
}

func toPhotoModels(rows []sqlc.Photo) []model.Photo {
	result := make([]model.Photo, len(rows))
	for i, row := range rows {
		result[i] = *toPhotoModel(row)
	}
	return result
}
