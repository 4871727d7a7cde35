package dto

import (
	"github.com/openday/backend/internal/app/models"
)

// FAQResponse represents a FAQ entry on the wire
type FAQResponse struct {
	ID       int64   `json:"id"`
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Category *string `json:"category"`
}

// NewFAQResponse maps a FAQ row to its response shape
func NewFAQResponse(faq *models.FAQ) FAQResponse {
	return FAQResponse{
		ID:       faq.ID,
		Question: faq.Question,
		Answer:   faq.Answer,
		Category: faq.Category,
	}
}

// NewFAQListResponse maps FAQ rows to their response shapes
func NewFAQListResponse(faqs []*models.FAQ) []FAQResponse {
	resp := make([]FAQResponse, 0, len(faqs))
	for _, faq := range faqs {
		resp = append(resp, NewFAQResponse(faq))
	}
	return resp
}
