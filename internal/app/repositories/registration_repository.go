package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/openday/backend/internal/app/models"
)

// RegistrationRepository handles database operations for open day registrations
type RegistrationRepository struct {
	db DB
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db DB) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
	}
}

// registrationSelect joins each registration with its open day.
const registrationSelect = `
	SELECT r.id, r.user_id, r.open_day_id, r.registration_date, r.interest_area,
	       r.attendance_status, r.receive_updates,
	       od.id, od.title, od.description, od.event_date,
	       to_char(od.start_time, 'HH24:MI'), to_char(od.end_time, 'HH24:MI'),
	       od.location, od.is_virtual, od.registration_deadline, od.created_at
	FROM registrations r
	JOIN open_days od ON od.id = r.open_day_id
`

func scanRegistration(row pgx.Row) (*models.Registration, error) {
	var registration models.Registration
	var openDay models.OpenDay

	err := row.Scan(
		&registration.ID,
		&registration.UserID,
		&registration.OpenDayID,
		&registration.RegistrationDate,
		&registration.InterestArea,
		&registration.AttendanceStatus,
		&registration.ReceiveUpdates,
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

	registration.OpenDay = &openDay
	return &registration, nil
}

// Create inserts a new registration and fills in its generated fields.
// A unique violation on (user_id, open_day_id) is returned unwrapped so
// callers can treat the concurrent-duplicate case as the idempotent path.
func (r *RegistrationRepository) Create(ctx context.Context, registration *models.Registration) error {
	query := `
		INSERT INTO registrations (user_id, open_day_id, interest_area, attendance_status, receive_updates)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, registration_date
	`

	err := r.db.QueryRow(ctx, query,
		registration.UserID,
		registration.OpenDayID,
		registration.InterestArea,
		registration.AttendanceStatus,
		registration.ReceiveUpdates,
	).Scan(&registration.ID, &registration.RegistrationDate)
	if err != nil {
		return err
	}

	return nil
}

// GetByUserAndOpenDay retrieves a registration for a (user, open day) pair,
// or nil when none exists
func (r *RegistrationRepository) GetByUserAndOpenDay(ctx context.Context, userID, openDayID int64) (*models.Registration, error) {
	query := registrationSelect + ` WHERE r.user_id = $1 AND r.open_day_id = $2`

	registration, err := scanRegistration(r.db.QueryRow(ctx, query, userID, openDayID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving registration: %w", err)
	}

	return registration, nil
}

// ListByUser retrieves all registrations for a user
func (r *RegistrationRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Registration, error) {
	query := registrationSelect + ` WHERE r.user_id = $1`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var registrations []*models.Registration
	for rows.Next() {
		registration, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		registrations = append(registrations, registration)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return registrations, nil
}
