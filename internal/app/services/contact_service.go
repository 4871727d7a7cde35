package services

import (
	"strings"

	"github.com/openday/backend/internal/app/models/dto"
	"github.com/openday/backend/internal/pkg/apperrors"
	"github.com/openday/backend/internal/pkg/logger"
	"github.com/openday/backend/internal/pkg/validation"
)

// DefaultContactSubject is used when a contact submission carries no subject
const DefaultContactSubject = "Open Day Inquiry"

// ContactService defines the interface for contact form submissions
type ContactService interface {
	Submit(req *dto.ContactRequest) (*dto.ContactResponse, error)
}

// contactServiceImpl implements the ContactService interface.
// Submissions are logged rather than mailed; the response echoes what a
// mail integration would send.
type contactServiceImpl struct{}

// NewContactService creates a new contact service instance
func NewContactService() ContactService {
	return &contactServiceImpl{}
}

// Submit validates a contact form submission and echoes it back
func (s *contactServiceImpl) Submit(req *dto.ContactRequest) (*dto.ContactResponse, error) {
	email := strings.TrimSpace(req.Email)
	if !validation.ValidEmail(email) {
		return nil, apperrors.ErrInvalidEmail
	}

	subject := DefaultContactSubject
	if req.Subject != nil && strings.TrimSpace(*req.Subject) != "" {
		subject = *req.Subject
	}

	logger.Info().
		Str("name", req.Name).
		Str("email", email).
		Str("subject", subject).
		Msg("Contact form submission received")

	return &dto.ContactResponse{
		Name:    req.Name,
		Email:   email,
		Subject: subject,
		Message: req.Message,
	}, nil
}
