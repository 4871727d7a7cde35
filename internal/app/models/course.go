package models

import (
	"time"
)

// Course defines the course model based on the 'courses' table.
// SubjectArea is a joined relation, populated by the repository.
type Course struct {
	ID            int64     `db:"id"`
	Name          string    `db:"name"`
	Description   *string   `db:"description"`
	SubjectAreaID *int64    `db:"subject_area_id"`
	Faculty       *string   `db:"faculty"`
	Duration      *string   `db:"duration"`
	UCASCode      *string   `db:"ucas_code"`
	Level         *string   `db:"level"`
	CreatedAt     time.Time `db:"created_at"`

	SubjectArea *SubjectArea `db:"-"`
}
