package models

import (
	"time"
)

// Feedback defines the feedback model based on the 'feedback' table
type Feedback struct {
	ID                     int64     `db:"id"`
	UserID                 int64     `db:"user_id"`
	OpenDayID              int64     `db:"open_day_id"`
	Rating                 int       `db:"rating"`
	UsefulAspects          []string  `db:"useful_aspects"`
	ImprovementSuggestions *string   `db:"improvement_suggestions"`
	AdditionalComments     *string   `db:"additional_comments"`
	SubmittedAt            time.Time `db:"submitted_at"`
}
