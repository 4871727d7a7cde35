package dto

import (
	"time"

	"github.com/openday/backend/internal/app/models"
)

// RegisterForOpenDayRequest represents an open day registration request.
// The body is optional; both fields default to empty.
type RegisterForOpenDayRequest struct {
	InterestArea   *int64 `json:"interest_area"`
	ReceiveUpdates bool   `json:"receive_updates"`
}

// RegistrationResponse represents a registration on the wire, embedding its
// open day.
type RegistrationResponse struct {
	ID               int64            `json:"id"`
	UserID           int64            `json:"user_id"`
	OpenDayID        int64            `json:"open_day_id"`
	RegistrationDate string           `json:"registration_date"`
	InterestArea     *int64           `json:"interest_area"`
	AttendanceStatus string           `json:"attendance_status"`
	ReceiveUpdates   bool             `json:"receive_updates"`
	OpenDay          *OpenDayResponse `json:"open_day"`
}

// NewRegistrationResponse maps a registration row to its response shape
func NewRegistrationResponse(registration *models.Registration) RegistrationResponse {
	resp := RegistrationResponse{
		ID:               registration.ID,
		UserID:           registration.UserID,
		OpenDayID:        registration.OpenDayID,
		RegistrationDate: registration.RegistrationDate.Format(time.RFC3339),
		InterestArea:     registration.InterestArea,
		AttendanceStatus: registration.AttendanceStatus,
		ReceiveUpdates:   registration.ReceiveUpdates,
	}

	if registration.OpenDay != nil {
		openDay := NewOpenDayResponse(registration.OpenDay)
		resp.OpenDay = &openDay
	}

	return resp
}

// NewRegistrationListResponse maps registration rows to their response shapes
func NewRegistrationListResponse(registrations []*models.Registration) []RegistrationResponse {
	resp := make([]RegistrationResponse, 0, len(registrations))
	for _, registration := range registrations {
		resp = append(resp, NewRegistrationResponse(registration))
	}
	return resp
}
