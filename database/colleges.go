package database

import (
	"context"

	"github.com/sahilchouksey/college-directory/model"
)

// ListColleges returns every college ordered by id
func (s *GORMStore) ListColleges(ctx context.Context) ([]model.College, error) {
	return listAll[model.College](ctx, s.db, "college", "id ASC")
}

// GetCollege returns nil without error when no college has this id
func (s *GORMStore) GetCollege(ctx context.Context, id uint) (*model.College, error) {
	return getByID[model.College](ctx, s.db, "college", id)
}

// CreateCollege inserts the college; any ID already set is discarded
func (s *GORMStore) CreateCollege(ctx context.Context, college *model.College) (*model.College, error) {
	college.ID = 0
	return create(ctx, s.db, "college", college)
}

// UpdateCollege writes only the columns present in changes
func (s *GORMStore) UpdateCollege(ctx context.Context, id uint, changes map[string]interface{}) (*model.College, error) {
	return updateByID[model.College](ctx, s.db, "college", id, changes)
}

// DeleteCollege returns the removed rows, empty when id was absent
func (s *GORMStore) DeleteCollege(ctx context.Context, id uint) ([]model.College, error) {
	return deleteByID[model.College](ctx, s.db, "college", id)
}
