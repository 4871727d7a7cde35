package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openday/backend/internal/app/models"
	"github.com/openday/backend/internal/app/models/dto"
	"github.com/openday/backend/internal/pkg/apperrors"
	"github.com/openday/backend/internal/pkg/auth"
	"github.com/openday/backend/internal/pkg/dberrors"
	"github.com/openday/backend/internal/pkg/validation"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, string, string, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userRepo   UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service instance
func NewAuthService(userRepo UserRepository, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new user account and returns the user with a fresh
// token pair
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, string, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validation.ValidEmail(email) {
		return nil, "", "", apperrors.ErrInvalidEmail
	}
	if !validation.ValidPassword(req.Password) {
		return nil, "", "", apperrors.ErrInvalidPassword
	}

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, "", "", fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, "", "", apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", "", fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Phone:        req.Phone,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Another request may have claimed the email between the check
		// and the insert; the unique index decides.
		if dberrors.IsUniqueViolation(err) {
			return nil, "", "", apperrors.ErrEmailAlreadyExists
		}
		return nil, "", "", fmt.Errorf("error creating user: %w", err)
	}

	accessToken, refreshToken, err := s.jwtService.GenerateTokenPair(user.ID)
	if err != nil {
		return nil, "", "", fmt.Errorf("error generating tokens: %w", err)
	}

	return user, accessToken, refreshToken, nil
}

// Login verifies credentials and returns the user with a fresh token pair
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			// Burn a bcrypt comparison so a missing account takes as
			// long as a wrong password.
			auth.BurnPasswordCheck(req.Password)
			return nil, "", "", apperrors.ErrInvalidCredentials
		}
		return nil, "", "", fmt.Errorf("error retrieving user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, "", "", apperrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.jwtService.GenerateTokenPair(user.ID)
	if err != nil {
		return nil, "", "", fmt.Errorf("error generating tokens: %w", err)
	}

	return user, accessToken, refreshToken, nil
}

// Refresh exchanges a valid refresh token for a new access token
func (s *authServiceImpl) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return "", apperrors.ErrTokenExpired
		}
		return "", apperrors.ErrTokenInvalid
	}

	// The account may have been removed since the token was issued.
	if _, err := s.userRepo.GetByID(ctx, claims.UserID); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return "", apperrors.ErrTokenInvalid
		}
		return "", fmt.Errorf("error retrieving user: %w", err)
	}

	accessToken, err := s.jwtService.GenerateAccessToken(claims.UserID)
	if err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}

	return accessToken, nil
}

// GetUser retrieves a user by ID
func (s *authServiceImpl) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
