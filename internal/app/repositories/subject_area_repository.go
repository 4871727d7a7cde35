package repositories

import (
	"context"
	"fmt"

	"github.com/openday/backend/internal/app/models"
)

// SubjectAreaRepository handles database operations for subject areas
type SubjectAreaRepository struct {
	db DB
}

// NewSubjectAreaRepository creates a new subject area repository
func NewSubjectAreaRepository(db DB) *SubjectAreaRepository {
	return &SubjectAreaRepository{
		db: db,
	}
}

// GetAll retrieves all subject areas
func (r *SubjectAreaRepository) GetAll(ctx context.Context) ([]*models.SubjectArea, error) {
	query := `
		SELECT id, name, description
		FROM subject_areas
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var areas []*models.SubjectArea
	for rows.Next() {
		var area models.SubjectArea
		if err := rows.Scan(&area.ID, &area.Name, &area.Description); err != nil {
			return nil, err
		}
		areas = append(areas, &area)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return areas, nil
}

// ExistsByName checks whether a subject area with the given name exists
func (r *SubjectAreaRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM subject_areas WHERE name = $1)`,
		name).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking subject area existence: %w", err)
	}

	return exists, nil
}

// Create inserts a new subject area
func (r *SubjectAreaRepository) Create(ctx context.Context, area *models.SubjectArea) error {
	query := `
		INSERT INTO subject_areas (name, description)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, area.Name, area.Description).Scan(&area.ID)
	if err != nil {
		return fmt.Errorf("error creating subject area: %w", err)
	}

	return nil
}
