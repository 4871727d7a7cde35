package models

// SubjectArea defines the subject area model based on the 'subject_areas' table
type SubjectArea struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
}
