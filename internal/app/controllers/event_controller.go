package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openday/backend/internal/app/models"
	"github.com/openday/backend/internal/app/models/dto"
	"github.com/openday/backend/internal/app/services"
	"github.com/openday/backend/internal/middleware"
)

// EventController handles event operations
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

// List returns events matching the query filters, ordered by start time
func (c *EventController) List(ctx *gin.Context) {
	filter := models.EventFilter{
		OpenDayID:     queryInt64(ctx, "open_day_id"),
		EventType:     queryString(ctx, "event_type"),
		SubjectAreaID: queryInt64(ctx, "subject_area_id"),
		BuildingID:    queryInt64(ctx, "building_id"),
	}

	events, err := c.eventService.List(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"events": dto.NewEventListResponse(events)})
}

// Get returns a single event
func (c *EventController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	event, err := c.eventService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"event": dto.NewEventResponse(event)})
}

// Create stores a new event. Admin only.
func (c *EventController) Create(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	event, err := c.eventService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Event created successfully",
		"event":   dto.NewEventResponse(event),
	})
}
