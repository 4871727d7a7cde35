package services

import (
	"context"

	"github.com/openday/backend/internal/app/models"
)

// FAQService defines the interface for FAQ data
type FAQService interface {
	List(ctx context.Context, category *string) ([]*models.FAQ, error)
}

// faqServiceImpl implements the FAQService interface
type faqServiceImpl struct {
	faqRepo FAQRepository
}

// NewFAQService creates a new FAQ service instance
func NewFAQService(faqRepo FAQRepository) FAQService {
	return &faqServiceImpl{
		faqRepo: faqRepo,
	}
}

// List retrieves FAQs, optionally filtered by category
func (s *faqServiceImpl) List(ctx context.Context, category *string) ([]*models.FAQ, error) {
	return s.faqRepo.GetAll(ctx, category)
}
