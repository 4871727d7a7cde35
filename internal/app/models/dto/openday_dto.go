package dto

import (
	"time"

	"github.com/openday/backend/internal/app/models"
	"github.com/openday/backend/internal/pkg/validation"
)

// CreateOpenDayRequest represents an open day creation request.
// Dates use YYYY-MM-DD and times HH:MM; parsing happens in the service.
type CreateOpenDayRequest struct {
	Title                string  `json:"title" binding:"required"`
	Description          *string `json:"description"`
	EventDate            string  `json:"event_date" binding:"required"`
	StartTime            string  `json:"start_time" binding:"required"`
	EndTime              string  `json:"end_time" binding:"required"`
	Location             *string `json:"location"`
	IsVirtual            bool    `json:"is_virtual"`
	RegistrationDeadline *string `json:"registration_deadline"`
}

// OpenDayResponse represents an open day on the wire
type OpenDayResponse struct {
	ID                   int64   `json:"id"`
	Title                string  `json:"title"`
	Description          *string `json:"description"`
	EventDate            string  `json:"event_date"`
	StartTime            string  `json:"start_time"`
	EndTime              string  `json:"end_time"`
	Location             *string `json:"location"`
	IsVirtual            bool    `json:"is_virtual"`
	RegistrationDeadline *string `json:"registration_deadline"`
	CreatedAt            string  `json:"created_at"`
}

// NewOpenDayResponse maps an open day row to its response shape
func NewOpenDayResponse(openDay *models.OpenDay) OpenDayResponse {
	resp := OpenDayResponse{
		ID:          openDay.ID,
		Title:       openDay.Title,
		Description: openDay.Description,
		EventDate:   validation.FormatDate(openDay.EventDate),
		StartTime:   openDay.StartTime,
		EndTime:     openDay.EndTime,
		Location:    openDay.Location,
		IsVirtual:   openDay.IsVirtual,
		CreatedAt:   openDay.CreatedAt.Format(time.RFC3339),
	}

	if openDay.RegistrationDeadline != nil {
		deadline := validation.FormatDate(*openDay.RegistrationDeadline)
		resp.RegistrationDeadline = &deadline
	}

	return resp
}

// NewOpenDayListResponse maps open day rows to their response shapes
func NewOpenDayListResponse(openDays []*models.OpenDay) []OpenDayResponse {
	resp := make([]OpenDayResponse, 0, len(openDays))
	for _, openDay := range openDays {
		resp = append(resp, NewOpenDayResponse(openDay))
	}
	return resp
}
