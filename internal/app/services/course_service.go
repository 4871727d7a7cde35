package services

import (
	"context"

	"github.com/openday/backend/internal/app/models"
)

// CourseService defines the interface for course catalogue data
type CourseService interface {
	List(ctx context.Context, subjectAreaID *int64) ([]*models.Course, error)
	SubjectAreas(ctx context.Context) ([]*models.SubjectArea, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo      CourseRepository
	subjectAreaRepo SubjectAreaRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo CourseRepository, subjectAreaRepo SubjectAreaRepository) CourseService {
	return &courseServiceImpl{
		courseRepo:      courseRepo,
		subjectAreaRepo: subjectAreaRepo,
	}
}

// List retrieves courses, optionally filtered by subject area
func (s *courseServiceImpl) List(ctx context.Context, subjectAreaID *int64) ([]*models.Course, error) {
	return s.courseRepo.GetAll(ctx, subjectAreaID)
}

// SubjectAreas retrieves all subject areas
func (s *courseServiceImpl) SubjectAreas(ctx context.Context) ([]*models.SubjectArea, error) {
	return s.subjectAreaRepo.GetAll(ctx)
}
