package models

import (
	"time"
)

// AttendanceStatusRegistered is the initial attendance status for a new registration.
const AttendanceStatusRegistered = "registered"

// Registration defines the registration model based on the 'registrations' table.
// OpenDay is a joined relation, populated by the repository.
type Registration struct {
	ID               int64     `db:"id"`
	UserID           int64     `db:"user_id"`
	OpenDayID        int64     `db:"open_day_id"`
	RegistrationDate time.Time `db:"registration_date"`
	InterestArea     *int64    `db:"interest_area"`
	AttendanceStatus string    `db:"attendance_status"`
	ReceiveUpdates   bool      `db:"receive_updates"`

	OpenDay *OpenDay `db:"-"`
}
