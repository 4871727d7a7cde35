package services

import (
	"context"
	"fmt"

	"github.com/openday/backend/internal/app/models"
	"github.com/openday/backend/internal/app/models/dto"
	"github.com/openday/backend/internal/pkg/apperrors"
	"github.com/openday/backend/internal/pkg/dberrors"
)

// FeedbackService defines the interface for open day feedback
type FeedbackService interface {
	Submit(ctx context.Context, userID int64, req *dto.SubmitFeedbackRequest) (*models.Feedback, error)
}

// feedbackServiceImpl implements the FeedbackService interface
type feedbackServiceImpl struct {
	feedbackRepo FeedbackRepository
	openDayRepo  OpenDayRepository
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService(feedbackRepo FeedbackRepository, openDayRepo OpenDayRepository) FeedbackService {
	return &feedbackServiceImpl{
		feedbackRepo: feedbackRepo,
		openDayRepo:  openDayRepo,
	}
}

// Submit validates and stores one feedback entry per user per open day
func (s *feedbackServiceImpl) Submit(ctx context.Context, userID int64, req *dto.SubmitFeedbackRequest) (*models.Feedback, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.ErrInvalidRating
	}

	exists, err := s.openDayRepo.Exists(ctx, req.OpenDayID)
	if err != nil {
		return nil, fmt.Errorf("error checking open day: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrOpenDayNotFound
	}

	submitted, err := s.feedbackRepo.ExistsByUserAndOpenDay(ctx, userID, req.OpenDayID)
	if err != nil {
		return nil, err
	}
	if submitted {
		return nil, apperrors.ErrFeedbackDuplicated
	}

	feedback := &models.Feedback{
		UserID:                 userID,
		OpenDayID:              req.OpenDayID,
		Rating:                 req.Rating,
		UsefulAspects:          req.UsefulAspects,
		ImprovementSuggestions: req.ImprovementSuggestions,
		AdditionalComments:     req.AdditionalComments,
	}

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		// A concurrent submission won the insert.
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrFeedbackDuplicated
		}
		return nil, fmt.Errorf("error creating feedback: %w", err)
	}

	return feedback, nil
}
