package models

import (
	"time"
)

// Building defines the building model based on the 'buildings' table
type Building struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Code        *string   `db:"code"`
	Description *string   `db:"description"`
	Campus      *string   `db:"campus"`
	Latitude    *float64  `db:"latitude"`
	Longitude   *float64  `db:"longitude"`
	CreatedAt   time.Time `db:"created_at"`
}
