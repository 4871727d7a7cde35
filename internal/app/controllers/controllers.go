// Package controllers handles HTTP request handling
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/openday/backend/internal/middleware"
	"github.com/openday/backend/internal/pkg/apperrors"
)

// parseIDParam reads a numeric path parameter. A non-numeric value means the
// route does not name a real resource, so the caller gets a plain 404.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.ErrResourceNotFound)
		return 0, false
	}
	return id, true
}

// queryInt64 reads an optional numeric query parameter, ignoring bad values
func queryInt64(ctx *gin.Context, name string) *int64 {
	raw, ok := ctx.GetQuery(name)
	if !ok {
		return nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &value
}

// queryString reads an optional non-empty string query parameter
func queryString(ctx *gin.Context, name string) *string {
	raw, ok := ctx.GetQuery(name)
	if !ok || raw == "" {
		return nil
	}
	return &raw
}
