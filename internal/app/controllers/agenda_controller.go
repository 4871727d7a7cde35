package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openday/backend/internal/app/models/dto"
	"github.com/openday/backend/internal/app/services"
	"github.com/openday/backend/internal/middleware"
)

// AgendaController handles personal agenda operations
type AgendaController struct {
	agendaService services.AgendaService
}

// NewAgendaController creates a new AgendaController
func NewAgendaController(agendaService services.AgendaService) *AgendaController {
	return &AgendaController{
		agendaService: agendaService,
	}
}

// List returns the caller's agenda, optionally limited to one open day
func (c *AgendaController) List(ctx *gin.Context) {
	userID := middleware.GetUserID(ctx)
	openDayID := queryInt64(ctx, "open_day_id")

	items, err := c.agendaService.List(ctx.Request.Context(), userID, openDayID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"agenda": dto.NewAgendaListResponse(items)})
}

// Add puts an event on the caller's agenda
func (c *AgendaController) Add(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID := middleware.GetUserID(ctx)

	created, err := c.agendaService.Add(ctx.Request.Context(), userID, eventID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !created {
		ctx.JSON(http.StatusOK, gin.H{"message": "Event already in agenda"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Event added to agenda successfully"})
}

// Remove takes an event off the caller's agenda
func (c *AgendaController) Remove(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID := middleware.GetUserID(ctx)

	if err := c.agendaService.Remove(ctx.Request.Context(), userID, eventID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Event removed from agenda successfully"})
}
