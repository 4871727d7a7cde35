package dto

import (
	"github.com/openday/backend/internal/app/models"
)

// CourseResponse represents a course on the wire, embedding its subject area.
type CourseResponse struct {
	ID          int64                `json:"id"`
	Name        string               `json:"name"`
	Description *string              `json:"description"`
	SubjectArea *SubjectAreaResponse `json:"subject_area"`
	Faculty     *string              `json:"faculty"`
	Duration    *string              `json:"duration"`
	UCASCode    *string              `json:"ucas_code"`
	Level       *string              `json:"level"`
}

// NewCourseResponse maps a course row to its response shape
func NewCourseResponse(course *models.Course) CourseResponse {
	resp := CourseResponse{
		ID:          course.ID,
		Name:        course.Name,
		Description: course.Description,
		Faculty:     course.Faculty,
		Duration:    course.Duration,
		UCASCode:    course.UCASCode,
		Level:       course.Level,
	}

	if course.SubjectArea != nil {
		area := NewSubjectAreaResponse(course.SubjectArea)
		resp.SubjectArea = &area
	}

	return resp
}

// NewCourseListResponse maps course rows to their response shapes
func NewCourseListResponse(courses []*models.Course) []CourseResponse {
	resp := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		resp = append(resp, NewCourseResponse(course))
	}
	return resp
}
