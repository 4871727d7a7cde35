package models

import (
	"time"
)

// FAQ defines the FAQ model based on the 'faqs' table
type FAQ struct {
	ID        int64      `db:"id"`
	Question  string     `db:"question"`
	Answer    string     `db:"answer"`
	Category  *string    `db:"category"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}
