package repositories

import (
	"context"

	"github.com/openday/backend/internal/app/models"
)

// FAQRepository handles database operations for FAQs
type FAQRepository struct {
	db DB
}

// NewFAQRepository creates a new FAQ repository
func NewFAQRepository(db DB) *FAQRepository {
	return &FAQRepository{
		db: db,
	}
}

// GetAll retrieves FAQs, optionally filtered by category
func (r *FAQRepository) GetAll(ctx context.Context, category *string) ([]*models.FAQ, error) {
	query := `
		SELECT id, question, answer, category, created_at, updated_at
		FROM faqs
	`
	var args []interface{}

	if category != nil {
		query += ` WHERE category = $1`
		args = append(args, *category)
	}
	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var faqs []*models.FAQ
	for rows.Next() {
		var faq models.FAQ
		err := rows.Scan(
			&faq.ID,
			&faq.Question,
			&faq.Answer,
			&faq.Category,
			&faq.CreatedAt,
			&faq.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		faqs = append(faqs, &faq)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return faqs, nil
}

// Create inserts a new FAQ and fills in its generated fields
func (r *FAQRepository) Create(ctx context.Context, faq *models.FAQ) error {
	query := `
		INSERT INTO faqs (question, answer, category)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, faq.Question, faq.Answer, faq.Category).
		Scan(&faq.ID, &faq.CreatedAt)
	if err != nil {
		return err
	}

	return nil
}
