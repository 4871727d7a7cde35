package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrInvalidPassword  = errors.New("password must be at least 8 characters and include a number and special character")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
)

// Open day errors
var (
	ErrOpenDayNotFound = errors.New("open day not found")
)

// Event errors
var (
	ErrEventNotFound = errors.New("event not found")
)

// Agenda errors
var (
	ErrEventNotInAgenda = errors.New("event not in agenda")
)

// Feedback errors
var (
	ErrInvalidRating      = errors.New("rating must be an integer between 1 and 5")
	ErrFeedbackDuplicated = errors.New("you have already submitted feedback for this open day")
)
