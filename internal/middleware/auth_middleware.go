package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openday/backend/internal/app/models"
	"github.com/openday/backend/internal/pkg/apperrors"
	"github.com/openday/backend/internal/pkg/auth"
)

// ContextUserID is the context key under which JWTAuth stores the caller's ID
const ContextUserID = "userID"

// userLoader loads a user row for the admin check
type userLoader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// AuthMiddleware guards routes behind JWT authentication
type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   userLoader
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, userRepo userLoader) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
	}
}

// JWTAuth validates the bearer token and stores the caller's user ID on the
// request context. Refresh tokens are rejected here; they are only good for
// the refresh endpoint.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		claims, err := m.jwtService.ValidateAccessToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}

// AdminRequired checks the authenticated caller against the users table.
// It must run after JWTAuth.
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt64(ContextUserID)

		user, err := m.userRepo.GetByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				// A deleted account holds no privileges.
				HandleAPIError(c, apperrors.ErrPermissionDenied)
				return
			}
			HandleAPIError(c, err)
			return
		}
		if !user.IsAdmin {
			HandleAPIError(c, apperrors.ErrPermissionDenied)
			return
		}

		c.Next()
	}
}

// GetUserID reads the authenticated caller's ID set by JWTAuth
func GetUserID(c *gin.Context) int64 {
	return c.GetInt64(ContextUserID)
}
