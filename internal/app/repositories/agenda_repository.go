package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/openday/backend/internal/app/models"
	"github.com/openday/backend/internal/pkg/apperrors"
)

// AgendaRepository handles database operations for personal agendas
type AgendaRepository struct {
	db DB
}

// NewAgendaRepository creates a new agenda repository
func NewAgendaRepository(db DB) *AgendaRepository {
	return &AgendaRepository{
		db: db,
	}
}

// Exists checks whether a user already has an event in their agenda
func (r *AgendaRepository) Exists(ctx context.Context, userID, eventID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM user_agenda WHERE user_id = $1 AND event_id = $2)`

	err := r.db.QueryRow(ctx, query, userID, eventID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking agenda entry: %w", err)
	}

	return exists, nil
}

// Create inserts a new agenda entry and fills in its generated fields.
// A unique violation on (user_id, event_id) is returned unwrapped so callers
// can treat a concurrent duplicate as already present.
func (r *AgendaRepository) Create(ctx context.Context, item *models.AgendaItem) error {
	query := `
		INSERT INTO user_agenda (user_id, event_id)
		VALUES ($1, $2)
		RETURNING id, added_at, attended
	`

	err := r.db.QueryRow(ctx, query, item.UserID, item.EventID).
		Scan(&item.ID, &item.AddedAt, &item.Attended)
	if err != nil {
		return err
	}

	return nil
}

// Delete removes an event from a user's agenda
func (r *AgendaRepository) Delete(ctx context.Context, userID, eventID int64) error {
	query := `DELETE FROM user_agenda WHERE user_id = $1 AND event_id = $2`

	tag, err := r.db.Exec(ctx, query, userID, eventID)
	if err != nil {
		return fmt.Errorf("error removing agenda entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotInAgenda
	}

	return nil
}

// ListByUser retrieves a user's agenda entries with their events, ordered by
// event start time. When openDayID is non-nil only entries for that open
// day's events are returned.
func (r *AgendaRepository) ListByUser(ctx context.Context, userID int64, openDayID *int64) ([]*models.AgendaItem, error) {
	query := `
		SELECT ua.id, ua.user_id, ua.event_id, ua.added_at, ua.attended,
		       e.id, e.open_day_id, e.title, e.description, e.event_type,
		       to_char(e.start_time, 'HH24:MI'), to_char(e.end_time, 'HH24:MI'),
		       e.building_id, e.room, e.capacity, e.subject_area_id, e.presenter, e.created_at,
		       b.id, b.name, b.code, b.description, b.campus, b.latitude, b.longitude,
		       sa.id, sa.name, sa.description
		FROM user_agenda ua
		JOIN events e ON e.id = ua.event_id
		LEFT JOIN buildings b ON b.id = e.building_id
		LEFT JOIN subject_areas sa ON sa.id = e.subject_area_id
		WHERE ua.user_id = $1
	`
	args := []interface{}{userID}

	if openDayID != nil {
		query += ` AND e.open_day_id = $2`
		args = append(args, *openDayID)
	}
	query += ` ORDER BY e.start_time`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.AgendaItem
	for rows.Next() {
		item, err := scanAgendaItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func scanAgendaItem(row pgx.Row) (*models.AgendaItem, error) {
	var item models.AgendaItem
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
		&item.ID,
		&item.UserID,
		&item.EventID,
		&item.AddedAt,
		&item.Attended,
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

	item.Event = &event
	return &item, nil
}
