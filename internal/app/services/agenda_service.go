package services

import (
	"context"
	"fmt"

	"github.com/openday/backend/internal/app/models"
	"github.com/openday/backend/internal/pkg/apperrors"
	"github.com/openday/backend/internal/pkg/dberrors"
)

// AgendaService defines the interface for personal agenda operations
type AgendaService interface {
	// Add puts an event on a user's agenda. The returned bool is true when
	// the event was newly added and false when it was already there.
	Add(ctx context.Context, userID, eventID int64) (bool, error)
	Remove(ctx context.Context, userID, eventID int64) error
	List(ctx context.Context, userID int64, openDayID *int64) ([]*models.AgendaItem, error)
}

// agendaServiceImpl implements the AgendaService interface
type agendaServiceImpl struct {
	agendaRepo AgendaRepository
	eventRepo  EventRepository
}

// NewAgendaService creates a new agenda service instance
func NewAgendaService(agendaRepo AgendaRepository, eventRepo EventRepository) AgendaService {
	return &agendaServiceImpl{
		agendaRepo: agendaRepo,
		eventRepo:  eventRepo,
	}
}

// Add puts an event on a user's agenda. Duplicate adds, whether found up
// front or raced in by a concurrent request, are reported as already present.
func (s *agendaServiceImpl) Add(ctx context.Context, userID, eventID int64) (bool, error) {
	exists, err := s.eventRepo.Exists(ctx, eventID)
	if err != nil {
		return false, fmt.Errorf("error checking event: %w", err)
	}
	if !exists {
		return false, apperrors.ErrEventNotFound
	}

	present, err := s.agendaRepo.Exists(ctx, userID, eventID)
	if err != nil {
		return false, err
	}
	if present {
		return false, nil
	}

	item := &models.AgendaItem{
		UserID:  userID,
		EventID: eventID,
	}
	if err := s.agendaRepo.Create(ctx, item); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("error adding agenda entry: %w", err)
	}

	return true, nil
}

// Remove takes an event off a user's agenda
func (s *agendaServiceImpl) Remove(ctx context.Context, userID, eventID int64) error {
	exists, err := s.eventRepo.Exists(ctx, eventID)
	if err != nil {
		return fmt.Errorf("error checking event: %w", err)
	}
	if !exists {
		return apperrors.ErrEventNotFound
	}

	return s.agendaRepo.Delete(ctx, userID, eventID)
}

// List retrieves a user's agenda, optionally limited to one open day's events
func (s *agendaServiceImpl) List(ctx context.Context, userID int64, openDayID *int64) ([]*models.AgendaItem, error) {
	return s.agendaRepo.ListByUser(ctx, userID, openDayID)
}
