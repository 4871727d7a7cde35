package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/openday/backend/internal/app/models"
	"github.com/openday/backend/internal/pkg/apperrors"
)

// OpenDayRepository handles database operations for open days
type OpenDayRepository struct {
	db DB
}

// NewOpenDayRepository creates a new open day repository
func NewOpenDayRepository(db DB) *OpenDayRepository {
	return &OpenDayRepository{
		db: db,
	}
}

const openDayColumns = `
	id, title, description, event_date,
	to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'),
	location, is_virtual, registration_deadline, created_at
`

func scanOpenDay(row pgx.Row) (*models.OpenDay, error) {
	var openDay models.OpenDay
	err := row.Scan(
		&openDay.ID,
		&openDay.Title,
		&openDay.Description,
		&openDay.EventDate,
		&openDay.StartTime,
		&openDay.EndTime,
		&openDay.Location,
		&openDay.IsVirtual,
		&openDay.RegistrationDeadline,
		&openDay.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &openDay, nil
}

// Create inserts a new open day and fills in its generated fields
func (r *OpenDayRepository) Create(ctx context.Context, openDay *models.OpenDay) error {
	query := `
		INSERT INTO open_days (title, description, event_date, start_time, end_time, location, is_virtual, registration_deadline)
		VALUES ($1, $2, $3, $4::time, $5::time, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		openDay.Title,
		openDay.Description,
		openDay.EventDate,
		openDay.StartTime,
		openDay.EndTime,
		openDay.Location,
		openDay.IsVirtual,
		openDay.RegistrationDeadline,
	).Scan(&openDay.ID, &openDay.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating open day: %w", err)
	}

	return nil
}

// GetByID retrieves an open day by ID
func (r *OpenDayRepository) GetByID(ctx context.Context, id int64) (*models.OpenDay, error) {
	query := `SELECT ` + openDayColumns + ` FROM open_days WHERE id = $1`

	openDay, err := scanOpenDay(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOpenDayNotFound
		}
		return nil, fmt.Errorf("error retrieving open day: %w", err)
	}

	return openDay, nil
}

// GetAll retrieves all open days ordered by event date
func (r *OpenDayRepository) GetAll(ctx context.Context) ([]*models.OpenDay, error) {
	query := `SELECT ` + openDayColumns + ` FROM open_days ORDER BY event_date`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var openDays []*models.OpenDay
	for rows.Next() {
		openDay, err := scanOpenDay(rows)
		if err != nil {
			return nil, err
		}
		openDays = append(openDays, openDay)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return openDays, nil
}

// Exists checks whether an open day with the given ID exists
func (r *OpenDayRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM open_days WHERE id = $1)`,
		id).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking open day existence: %w", err)
	}

	return exists, nil
}
