package services

import (
	"context"
	"fmt"

	"github.com/openday/backend/internal/app/models"
	"github.com/openday/backend/internal/app/models/dto"
	"github.com/openday/backend/internal/pkg/apperrors"
	"github.com/openday/backend/internal/pkg/validation"
)

// OpenDayService defines the interface for open day operations
type OpenDayService interface {
	List(ctx context.Context) ([]*models.OpenDay, error)
	Get(ctx context.Context, id int64) (*models.OpenDay, error)
	Create(ctx context.Context, req *dto.CreateOpenDayRequest) (*models.OpenDay, error)
}

// openDayServiceImpl implements the OpenDayService interface
type openDayServiceImpl struct {
	openDayRepo OpenDayRepository
}

// NewOpenDayService creates a new open day service instance
func NewOpenDayService(openDayRepo OpenDayRepository) OpenDayService {
	return &openDayServiceImpl{
		openDayRepo: openDayRepo,
	}
}

// List retrieves all open days ordered by event date
func (s *openDayServiceImpl) List(ctx context.Context) ([]*models.OpenDay, error) {
	return s.openDayRepo.GetAll(ctx)
}

// Get retrieves a single open day by ID
func (s *openDayServiceImpl) Get(ctx context.Context, id int64) (*models.OpenDay, error) {
	return s.openDayRepo.GetByID(ctx, id)
}

// Create validates and stores a new open day
func (s *openDayServiceImpl) Create(ctx context.Context, req *dto.CreateOpenDayRequest) (*models.OpenDay, error) {
	eventDate, err := validation.ParseDate(req.EventDate)
	if err != nil {
		return nil, fmt.Errorf("%w: event_date must be YYYY-MM-DD", apperrors.ErrValidationFailed)
	}
	if _, err := validation.ParseTime(req.StartTime); err != nil {
		return nil, fmt.Errorf("%w: start_time must be HH:MM", apperrors.ErrValidationFailed)
	}
	if _, err := validation.ParseTime(req.EndTime); err != nil {
		return nil, fmt.Errorf("%w: end_time must be HH:MM", apperrors.ErrValidationFailed)
	}

	openDay := &models.OpenDay{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   eventDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		IsVirtual:   req.IsVirtual,
	}

	if req.RegistrationDeadline != nil {
		deadline, err := validation.ParseDate(*req.RegistrationDeadline)
		if err != nil {
			return nil, fmt.Errorf("%w: registration_deadline must be YYYY-MM-DD", apperrors.ErrValidationFailed)
		}
		openDay.RegistrationDeadline = &deadline
	}

	if err := s.openDayRepo.Create(ctx, openDay); err != nil {
		return nil, fmt.Errorf("error creating open day: %w", err)
	}

	return openDay, nil
}
