package dto

import (
	"time"

	"github.com/openday/backend/internal/app/models"
)

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Email    string  `json:"email" binding:"required"`
	Password string  `json:"password" binding:"required"`
	FullName string  `json:"full_name" binding:"required"`
	Phone    *string `json:"phone"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse represents a user on the wire
type UserResponse struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	FullName  string  `json:"full_name"`
	Phone     *string `json:"phone"`
	CreatedAt string  `json:"created_at"`
	IsAdmin   bool    `json:"is_admin"`
}

// NewUserResponse maps a user row to its response shape
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		IsAdmin:   user.IsAdmin,
	}
}

// AuthResponse represents a successful register/login response
type AuthResponse struct {
	Message      string       `json:"message"`
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}
