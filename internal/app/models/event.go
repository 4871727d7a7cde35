package models

import (
	"time"
)

// Event defines the event model based on the 'events' table.
// Building and SubjectArea are joined relations, populated by the repository.
type Event struct {
	ID            int64     `db:"id"`
	OpenDayID     int64     `db:"open_day_id"`
	Title         string    `db:"title"`
	Description   *string   `db:"description"`
	EventType     string    `db:"event_type"`
	StartTime     string    `db:"start_time"`
	EndTime       string    `db:"end_time"`
	BuildingID    *int64    `db:"building_id"`
	Room          *string   `db:"room"`
	Capacity      *int      `db:"capacity"`
	SubjectAreaID *int64    `db:"subject_area_id"`
	Presenter     *string   `db:"presenter"`
	CreatedAt     time.Time `db:"created_at"`

	Building    *Building    `db:"-"`
	SubjectArea *SubjectArea `db:"-"`
}

// EventFilter holds the optional equality filters for event listings.
// Filters compose with logical AND; nil fields are no-ops.
type EventFilter struct {
	OpenDayID     *int64
	EventType     *string
	SubjectAreaID *int64
	BuildingID    *int64
}
