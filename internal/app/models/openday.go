package models

import (
	"time"
)

// OpenDay defines the open day model based on the 'open_days' table.
// StartTime and EndTime hold the wire format HH:MM; the columns are TIME and
// the repositories convert on the way in and out.
type OpenDay struct {
	ID                   int64      `db:"id"`
	Title                string     `db:"title"`
	Description          *string    `db:"description"`
	EventDate            time.Time  `db:"event_date"`
	StartTime            string     `db:"start_time"`
	EndTime              string     `db:"end_time"`
	Location             *string    `db:"location"`
	IsVirtual            bool       `db:"is_virtual"`
	RegistrationDeadline *time.Time `db:"registration_deadline"`
	CreatedAt            time.Time  `db:"created_at"`
}
