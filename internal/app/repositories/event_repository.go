package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/openday/backend/internal/app/models"
	"github.com/openday/backend/internal/pkg/apperrors"
)

// EventRepository handles database operations for events
type EventRepository struct {
	db DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

// eventSelect joins each event with its optional building and subject area so
// listings carry the embedded objects in one round trip.
const eventSelect = `
	SELECT e.id, e.open_day_id, e.title, e.description, e.event_type,
	       to_char(e.start_time, 'HH24:MI'), to_char(e.end_time, 'HH24:MI'),
	       e.building_id, e.room, e.capacity, e.subject_area_id, e.presenter, e.created_at,
	       b.id, b.name, b.code, b.description, b.campus, b.latitude, b.longitude,
	       sa.id, sa.name, sa.description
	FROM events e
	LEFT JOIN buildings b ON b.id = e.building_id
	LEFT JOIN subject_areas sa ON sa.id = e.subject_area_id
`

func scanEvent(row pgx.Row) (*models.Event, error) {
	var event models.Event
	var (
		buildingID      *int64
		buildingName    *string
		buildingCode    *string
		buildingDesc    *string
		buildingCampus  *string
		buildingLat     *float64
		buildingLng     *float64
		subjectAreaID   *int64
		subjectAreaName *string
		subjectAreaDesc *string
	)

	err := row.Scan(
		&event.ID,
		&event.OpenDayID,
		&event.Title,
		&event.Description,
		&event.EventType,
		&event.StartTime,
		&event.EndTime,
		&event.BuildingID,
		&event.Room,
		&event.Capacity,
		&event.SubjectAreaID,
		&event.Presenter,
		&event.CreatedAt,
		&buildingID,
		&buildingName,
		&buildingCode,
		&buildingDesc,
		&buildingCampus,
		&buildingLat,
		&buildingLng,
		&subjectAreaID,
		&subjectAreaName,
		&subjectAreaDesc,
	)
	if err != nil {
		return nil, err
	}

	if buildingID != nil {
		event.Building = &models.Building{
			ID:          *buildingID,
			Name:        *buildingName,
			Code:        buildingCode,
			Description: buildingDesc,
			Campus:      buildingCampus,
			Latitude:    buildingLat,
			Longitude:   buildingLng,
		}
	}

	if subjectAreaID != nil {
		event.SubjectArea = &models.SubjectArea{
			ID:          *subjectAreaID,
			Name:        *subjectAreaName,
			Description: subjectAreaDesc,
		}
	}

	return &event, nil
}

// Create inserts a new event and fills in its generated fields
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (open_day_id, title, description, event_type, start_time, end_time,
		                    building_id, room, capacity, subject_area_id, presenter)
		VALUES ($1, $2, $3, $4, $5::time, $6::time, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		event.OpenDayID,
		event.Title,
		event.Description,
		event.EventType,
		event.StartTime,
		event.EndTime,
		event.BuildingID,
		event.Room,
		event.Capacity,
		event.SubjectAreaID,
		event.Presenter,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating event: %w", err)
	}

	return nil
}

// GetByID retrieves an event by ID with its building and subject area
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := eventSelect + ` WHERE e.id = $1`

	event, err := scanEvent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}

	return event, nil
}

// GetAll retrieves events matching the filter, ordered by start time
func (r *EventRepository) GetAll(ctx context.Context, filter models.EventFilter) ([]*models.Event, error) {
	var conditions []string
	var args []interface{}

	addCondition := func(column string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, column+" = $"+strconv.Itoa(len(args)))
	}

	if filter.OpenDayID != nil {
		addCondition("e.open_day_id", *filter.OpenDayID)
	}
	if filter.EventType != nil {
		addCondition("e.event_type", *filter.EventType)
	}
	if filter.SubjectAreaID != nil {
		addCondition("e.subject_area_id", *filter.SubjectAreaID)
	}
	if filter.BuildingID != nil {
		addCondition("e.building_id", *filter.BuildingID)
	}

	query := eventSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY e.start_time"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// Exists checks whether an event with the given ID exists
func (r *EventRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`,
		id).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking event existence: %w", err)
	}

	return exists, nil
}
