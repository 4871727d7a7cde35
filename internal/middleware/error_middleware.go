package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openday/backend/internal/metrics"
	"github.com/openday/backend/internal/pkg/apperrors"
	"github.com/openday/backend/internal/pkg/logger"
)

// HandleAPIError maps service errors to their response status and body.
// Unknown errors are logged with the request path and answered with an
// opaque message.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidEmail):
		abortWithError(c, http.StatusBadRequest, "Invalid email format")
	case errors.Is(err, apperrors.ErrInvalidPassword):
		abortWithError(c, http.StatusBadRequest, "Password must be at least 8 characters and include a number and special character")
	case errors.Is(err, apperrors.ErrInvalidRating):
		abortWithError(c, http.StatusBadRequest, "Rating must be an integer between 1 and 5")
	case errors.Is(err, apperrors.ErrValidationFailed):
		abortWithError(c, http.StatusBadRequest, "Missing required fields")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		abortWithError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, apperrors.ErrTokenExpired):
		abortWithError(c, http.StatusUnauthorized, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		abortWithError(c, http.StatusUnauthorized, "Invalid token")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		abortWithError(c, http.StatusForbidden, "Unauthorized")
	case errors.Is(err, apperrors.ErrUserNotFound):
		abortWithError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, apperrors.ErrOpenDayNotFound):
		abortWithError(c, http.StatusNotFound, "Open day not found")
	case errors.Is(err, apperrors.ErrEventNotFound):
		abortWithError(c, http.StatusNotFound, "Event not found")
	case errors.Is(err, apperrors.ErrEventNotInAgenda):
		abortWithError(c, http.StatusNotFound, "Event not in agenda")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		abortWithError(c, http.StatusNotFound, "Not found")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		abortWithError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, apperrors.ErrFeedbackDuplicated):
		abortWithError(c, http.StatusConflict, "You have already submitted feedback for this open day")
	default:
		metrics.HandlerErrors.Inc()
		logger.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
