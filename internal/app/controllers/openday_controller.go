package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openday/backend/internal/app/models/dto"
	"github.com/openday/backend/internal/app/services"
	"github.com/openday/backend/internal/middleware"
)

// OpenDayController handles open day operations
type OpenDayController struct {
	openDayService services.OpenDayService
}

// NewOpenDayController creates a new OpenDayController
func NewOpenDayController(openDayService services.OpenDayService) *OpenDayController {
	return &OpenDayController{
		openDayService: openDayService,
	}
}

// List returns all open days ordered by event date
func (c *OpenDayController) List(ctx *gin.Context) {
	openDays, err := c.openDayService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"open_days": dto.NewOpenDayListResponse(openDays)})
}

// Get returns a single open day
func (c *OpenDayController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	openDay, err := c.openDayService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"open_day": dto.NewOpenDayResponse(openDay)})
}

// Create stores a new open day. Admin only.
func (c *OpenDayController) Create(ctx *gin.Context) {
	var req dto.CreateOpenDayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	openDay, err := c.openDayService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message":  "Open day created successfully",
		"open_day": dto.NewOpenDayResponse(openDay),
	})
}
