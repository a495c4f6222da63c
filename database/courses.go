package database

import (
	"context"

	"github.com/sahilchouksey/college-directory/model"
)

func (s *GORMStore) ListCourses(ctx context.Context) ([]model.Course, error) {
	return listAll[model.Course](ctx, s.db, "course", "id ASC")
}

func (s *GORMStore) GetCourse(ctx context.Context, id uint) (*model.Course, error) {
	return getByID[model.Course](ctx, s.db, "course", id)
}

func (s *GORMStore) CreateCourse(ctx context.Context, course *model.Course) (*model.Course, error) {
	course.ID = 0
	return create(ctx, s.db, "course", course)
}

func (s *GORMStore) UpdateCourse(ctx context.Context, id uint, changes map[string]interface{}) (*model.Course, error) {
	return updateByID[model.Course](ctx, s.db, "course", id, changes)
}

func (s *GORMStore) DeleteCourse(ctx context.Context, id uint) ([]model.Course, error) {
	return deleteByID[model.Course](ctx, s.db, "course", id)
}
