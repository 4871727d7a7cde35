package dto

import (
	"time"

	"github.com/openday/backend/internal/app/models"
)

// CreateEventRequest represents an event creation request
type CreateEventRequest struct {
	OpenDayID     int64   `json:"open_day_id" binding:"required"`
	Title         string  `json:"title" binding:"required"`
	Description   *string `json:"description"`
	EventType     string  `json:"event_type" binding:"required"`
	StartTime     string  `json:"start_time" binding:"required"`
	EndTime       string  `json:"end_time" binding:"required"`
	BuildingID    *int64  `json:"building_id"`
	Room          *string `json:"room"`
	Capacity      *int    `json:"capacity"`
	SubjectAreaID *int64  `json:"subject_area_id"`
	Presenter     *string `json:"presenter"`
}

// EventResponse represents an event on the wire. Building and subject area
// are embedded objects, null when the event has none.
type EventResponse struct {
	ID          int64                `json:"id"`
	OpenDayID   int64                `json:"open_day_id"`
	Title       string               `json:"title"`
	Description *string              `json:"description"`
	EventType   string               `json:"event_type"`
	StartTime   string               `json:"start_time"`
	EndTime     string               `json:"end_time"`
	Building    *BuildingResponse    `json:"building"`
	Room        *string              `json:"room"`
	Capacity    *int                 `json:"capacity"`
	SubjectArea *SubjectAreaResponse `json:"subject_area"`
	Presenter   *string              `json:"presenter"`
	CreatedAt   string               `json:"created_at"`
}

// NewEventResponse maps an event row to its response shape
func NewEventResponse(event *models.Event) EventResponse {
	resp := EventResponse{
		ID:          event.ID,
		OpenDayID:   event.OpenDayID,
		Title:       event.Title,
		Description: event.Description,
		EventType:   event.EventType,
		StartTime:   event.StartTime,
		EndTime:     event.EndTime,
		Room:        event.Room,
		Capacity:    event.Capacity,
		Presenter:   event.Presenter,
		CreatedAt:   event.CreatedAt.Format(time.RFC3339),
	}

	if event.Building != nil {
		building := NewBuildingResponse(event.Building)
		resp.Building = &building
	}

	if event.SubjectArea != nil {
		area := NewSubjectAreaResponse(event.SubjectArea)
		resp.SubjectArea = &area
	}

	return resp
}

// NewEventListResponse maps event rows to their response shapes
func NewEventListResponse(events []*models.Event) []EventResponse {
	resp := make([]EventResponse, 0, len(events))
	for _, event := range events {
		resp = append(resp, NewEventResponse(event))
	}
	return resp
}

// AgendaEventResponse is an event annotated with the caller's agenda state
type AgendaEventResponse struct {
	EventResponse
	Attended bool   `json:"attended"`
	AddedAt  string `json:"added_at"`
}

// NewAgendaEventResponse maps an agenda item and its event to the annotated shape
func NewAgendaEventResponse(item *models.AgendaItem) AgendaEventResponse {
	return AgendaEventResponse{
		EventResponse: NewEventResponse(item.Event),
		Attended:      item.Attended,
		AddedAt:       item.AddedAt.Format(time.RFC3339),
	}
}

// NewAgendaListResponse maps agenda items to their annotated shapes
func NewAgendaListResponse(items []*models.AgendaItem) []AgendaEventResponse {
	resp := make([]AgendaEventResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, NewAgendaEventResponse(item))
	}
	return resp
}
