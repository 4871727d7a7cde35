package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID           int64     `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	FullName     string    `db:"full_name"`
	Phone        *string   `db:"phone"`
	CreatedAt    time.Time `db:"created_at"`
	IsAdmin      bool      `db:"is_admin"`
}
