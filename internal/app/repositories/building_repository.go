package repositories

import (
	"context"
	"fmt"

	"github.com/openday/backend/internal/app/models"
)

// BuildingRepository handles database operations for buildings
type BuildingRepository struct {
	db DB
}

// NewBuildingRepository creates a new building repository
func NewBuildingRepository(db DB) *BuildingRepository {
	return &BuildingRepository{
		db: db,
	}
}

// GetAll retrieves all buildings, optionally filtered by campus
func (r *BuildingRepository) GetAll(ctx context.Context, campus *string) ([]*models.Building, error) {
	query := `
		SELECT id, name, code, description, campus, latitude, longitude, created_at
		FROM buildings
	`
	var args []interface{}
	if campus != nil {
		query += ` WHERE campus = $1`
		args = append(args, *campus)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var buildings []*models.Building
	for rows.Next() {
		var building models.Building
		if err := rows.Scan(
			&building.ID,
			&building.Name,
			&building.Code,
			&building.Description,
			&building.Campus,
			&building.Latitude,
			&building.Longitude,
			&building.CreatedAt,
		); err != nil {
			return nil, err
		}
		buildings = append(buildings, &building)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return buildings, nil
}

// DistinctCampuses retrieves the distinct non-empty campus names
func (r *BuildingRepository) DistinctCampuses(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT campus
		FROM buildings
		WHERE campus IS NOT NULL AND campus <> ''
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving campuses: %w", err)
	}
	defer rows.Close()

	var campuses []string
	for rows.Next() {
		var campus string
		if err := rows.Scan(&campus); err != nil {
			return nil, err
		}
		campuses = append(campuses, campus)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return campuses, nil
}

// ExistsByName checks whether a building with the given name exists
func (r *BuildingRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM buildings WHERE name = $1)`,
		name).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking building existence: %w", err)
	}

	return exists, nil
}

// Create inserts a new building and fills in its generated fields
func (r *BuildingRepository) Create(ctx context.Context, building *models.Building) error {
	query := `
		INSERT INTO buildings (name, code, description, campus, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		building.Name,
		building.Code,
		building.Description,
		building.Campus,
		building.Latitude,
		building.Longitude,
	).Scan(&building.ID, &building.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating building: %w", err)
	}

	return nil
}
