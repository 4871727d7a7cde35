package models

import (
	"time"
)

// AgendaItem defines the agenda entry model based on the 'user_agenda' table.
// Event is a joined relation, populated by the repository.
type AgendaItem struct {
	ID       int64     `db:"id"`
	UserID   int64     `db:"user_id"`
	EventID  int64     `db:"event_id"`
	AddedAt  time.Time `db:"added_at"`
	Attended bool      `db:"attended"`

	Event *Event `db:"-"`
}
