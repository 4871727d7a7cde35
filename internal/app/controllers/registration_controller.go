package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openday/backend/internal/app/models/dto"
	"github.com/openday/backend/internal/app/services"
	"github.com/openday/backend/internal/middleware"
)

// RegistrationController handles open day registration operations
type RegistrationController struct {
	registrationService services.RegistrationService
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService services.RegistrationService) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
	}
}

// Register signs the caller up for an open day. The body is optional.
func (c *RegistrationController) Register(ctx *gin.Context) {
	openDayID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID := middleware.GetUserID(ctx)

	var req dto.RegisterForOpenDayRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}
	}

	registration, created, err := c.registrationService.Register(ctx.Request.Context(), userID, openDayID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !created {
		ctx.JSON(http.StatusOK, gin.H{
			"message":      "Already registered for this open day",
			"registration": dto.NewRegistrationResponse(registration),
		})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message":      "Successfully registered for open day",
		"registration": dto.NewRegistrationResponse(registration),
	})
}

// List returns the caller's registrations
func (c *RegistrationController) List(ctx *gin.Context) {
	userID := middleware.GetUserID(ctx)

	registrations, err := c.registrationService.List(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"registrations": dto.NewRegistrationListResponse(registrations)})
}
