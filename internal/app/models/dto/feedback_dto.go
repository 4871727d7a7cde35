package dto

import (
	"time"

	"github.com/openday/backend/internal/app/models"
)

// SubmitFeedbackRequest represents a feedback submission. A non-integer
// rating fails JSON binding; the range check lives in the service.
type SubmitFeedbackRequest struct {
	OpenDayID              int64    `json:"open_day_id" binding:"required"`
	Rating                 int      `json:"rating" binding:"required"`
	UsefulAspects          []string `json:"useful_aspects"`
	ImprovementSuggestions *string  `json:"improvement_suggestions"`
	AdditionalComments     *string  `json:"additional_comments"`
}

// FeedbackResponse represents feedback on the wire
type FeedbackResponse struct {
	ID                     int64    `json:"id"`
	UserID                 int64    `json:"user_id"`
	OpenDayID              int64    `json:"open_day_id"`
	Rating                 int      `json:"rating"`
	UsefulAspects          []string `json:"useful_aspects"`
	ImprovementSuggestions *string  `json:"improvement_suggestions"`
	AdditionalComments     *string  `json:"additional_comments"`
	SubmittedAt            string   `json:"submitted_at"`
}

// NewFeedbackResponse maps a feedback row to its response shape
func NewFeedbackResponse(feedback *models.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:                     feedback.ID,
		UserID:                 feedback.UserID,
		OpenDayID:              feedback.OpenDayID,
		Rating:                 feedback.Rating,
		UsefulAspects:          feedback.UsefulAspects,
		ImprovementSuggestions: feedback.ImprovementSuggestions,
		AdditionalComments:     feedback.AdditionalComments,
		SubmittedAt:            feedback.SubmittedAt.Format(time.RFC3339),
	}
}
