package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openday/backend/internal/app/models/dto"
	"github.com/openday/backend/internal/app/services"
	"github.com/openday/backend/internal/middleware"
)

// BuildingController serves campus map data
type BuildingController struct {
	buildingService services.BuildingService
}

// NewBuildingController creates a new BuildingController
func NewBuildingController(buildingService services.BuildingService) *BuildingController {
	return &BuildingController{
		buildingService: buildingService,
	}
}

// Buildings returns buildings, optionally filtered by campus
func (c *BuildingController) Buildings(ctx *gin.Context) {
	campus := queryString(ctx, "campus")

	buildings, err := c.buildingService.List(ctx.Request.Context(), campus)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"buildings": dto.NewBuildingListResponse(buildings)})
}

// Campuses returns the distinct campus names
func (c *BuildingController) Campuses(ctx *gin.Context) {
	campuses, err := c.buildingService.Campuses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if campuses == nil {
		campuses = []string{}
	}
	ctx.JSON(http.StatusOK, gin.H{"campuses": campuses})
}
