package repositories

import (
	"context"

	"github.com/openday/backend/internal/app/models"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db DB) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// GetAll retrieves courses with their subject areas, optionally filtered by
// subject area, ordered by name
func (r *CourseRepository) GetAll(ctx context.Context, subjectAreaID *int64) ([]*models.Course, error) {
	query := `
		SELECT c.id, c.name, c.description, c.subject_area_id, c.faculty,
		       c.duration, c.ucas_code, c.level, c.created_at,
		       sa.id, sa.name, sa.description
		FROM courses c
		LEFT JOIN subject_areas sa ON sa.id = c.subject_area_id
	`
	var args []interface{}

	if subjectAreaID != nil {
		query += ` WHERE c.subject_area_id = $1`
		args = append(args, *subjectAreaID)
	}
	query += ` ORDER BY c.name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		var (
			subjectAreaID   *int64
			subjectAreaName *string
			subjectAreaDesc *string
		)

		err := rows.Scan(
			&course.ID,
			&course.Name,
			&course.Description,
			&course.SubjectAreaID,
			&course.Faculty,
			&course.Duration,
			&course.UCASCode,
			&course.Level,
			&course.CreatedAt,
			&subjectAreaID,
			&subjectAreaName,
			&subjectAreaDesc,
		)
		if err != nil {
			return nil, err
		}

		if subjectAreaID != nil {
			course.SubjectArea = &models.SubjectArea{
				ID:          *subjectAreaID,
				Name:        *subjectAreaName,
				Description: subjectAreaDesc,
			}
		}

		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Create inserts a new course and fills in its generated fields
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (name, description, subject_area_id, faculty, duration, ucas_code, level)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		course.Name,
		course.Description,
		course.SubjectAreaID,
		course.Faculty,
		course.Duration,
		course.UCASCode,
		course.Level,
	).Scan(&course.ID, &course.CreatedAt)
	if err != nil {
		return err
	}

	return nil
}
