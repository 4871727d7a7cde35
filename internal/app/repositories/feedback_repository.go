package repositories

import (
	"context"
	"fmt"

	"github.com/openday/backend/internal/app/models"
)

// FeedbackRepository handles database operations for open day feedback
type FeedbackRepository struct {
	db DB
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db DB) *FeedbackRepository {
	return &FeedbackRepository{
		db: db,
	}
}

// ExistsByUserAndOpenDay checks whether a user already submitted feedback
// for an open day
func (r *FeedbackRepository) ExistsByUserAndOpenDay(ctx context.Context, userID, openDayID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM feedback WHERE user_id = $1 AND open_day_id = $2)`

	err := r.db.QueryRow(ctx, query, userID, openDayID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking feedback: %w", err)
	}

	return exists, nil
}

// Create inserts a new feedback entry and fills in its generated fields.
// A unique violation on (user_id, open_day_id) is returned unwrapped so
// callers can map a concurrent duplicate to the conflict case.
func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	query := `
		INSERT INTO feedback (user_id, open_day_id, rating, useful_aspects, improvement_suggestions, additional_comments)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, submitted_at
	`

	err := r.db.QueryRow(ctx, query,
		feedback.UserID,
		feedback.OpenDayID,
		feedback.Rating,
		feedback.UsefulAspects,
		feedback.ImprovementSuggestions,
		feedback.AdditionalComments,
	).Scan(&feedback.ID, &feedback.SubmittedAt)
	if err != nil {
		return err
	}

	return nil
}
