package services

import (
	"context"
	"fmt"

	"github.com/openday/backend/internal/app/models"
	"github.com/openday/backend/internal/app/models/dto"
	"github.com/openday/backend/internal/pkg/apperrors"
	"github.com/openday/backend/internal/pkg/validation"
)

// EventService defines the interface for event operations
type EventService interface {
	List(ctx context.Context, filter models.EventFilter) ([]*models.Event, error)
	Get(ctx context.Context, id int64) (*models.Event, error)
	Create(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error)
}

// eventServiceImpl implements the EventService interface
type eventServiceImpl struct {
	eventRepo   EventRepository
	openDayRepo OpenDayRepository
}

// NewEventService creates a new event service instance
func NewEventService(eventRepo EventRepository, openDayRepo OpenDayRepository) EventService {
	return &eventServiceImpl{
		eventRepo:   eventRepo,
		openDayRepo: openDayRepo,
	}
}

// List retrieves events matching the filter, ordered by start time
func (s *eventServiceImpl) List(ctx context.Context, filter models.EventFilter) ([]*models.Event, error) {
	return s.eventRepo.GetAll(ctx, filter)
}

// Get retrieves a single event by ID
func (s *eventServiceImpl) Get(ctx context.Context, id int64) (*models.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

// Create validates and stores a new event under an existing open day
func (s *eventServiceImpl) Create(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error) {
	exists, err := s.openDayRepo.Exists(ctx, req.OpenDayID)
	if err != nil {
		return nil, fmt.Errorf("error checking open day: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrOpenDayNotFound
	}

	if _, err := validation.ParseTime(req.StartTime); err != nil {
		return nil, fmt.Errorf("%w: start_time must be HH:MM", apperrors.ErrValidationFailed)
	}
	if _, err := validation.ParseTime(req.EndTime); err != nil {
		return nil, fmt.Errorf("%w: end_time must be HH:MM", apperrors.ErrValidationFailed)
	}

	event := &models.Event{
		OpenDayID:     req.OpenDayID,
		Title:         req.Title,
		Description:   req.Description,
		EventType:     req.EventType,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		BuildingID:    req.BuildingID,
		Room:          req.Room,
		Capacity:      req.Capacity,
		SubjectAreaID: req.SubjectAreaID,
		Presenter:     req.Presenter,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("error creating event: %w", err)
	}

	// Re-read so the response carries the joined building and subject area.
	return s.eventRepo.GetByID(ctx, event.ID)
}
