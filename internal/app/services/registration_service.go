package services

import (
	"context"
	"fmt"

	"github.com/openday/backend/internal/app/models"
	"github.com/openday/backend/internal/app/models/dto"
	"github.com/openday/backend/internal/pkg/apperrors"
	"github.com/openday/backend/internal/pkg/dberrors"
)

// RegistrationService defines the interface for open day registrations
type RegistrationService interface {
	// Register signs a user up for an open day. The returned bool is true
	// when a new registration was created and false when the user was
	// already registered.
	Register(ctx context.Context, userID, openDayID int64, req *dto.RegisterForOpenDayRequest) (*models.Registration, bool, error)
	List(ctx context.Context, userID int64) ([]*models.Registration, error)
}

// registrationServiceImpl implements the RegistrationService interface
type registrationServiceImpl struct {
	registrationRepo RegistrationRepository
	openDayRepo      OpenDayRepository
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(registrationRepo RegistrationRepository, openDayRepo OpenDayRepository) RegistrationService {
	return &registrationServiceImpl{
		registrationRepo: registrationRepo,
		openDayRepo:      openDayRepo,
	}
}

// Register signs a user up for an open day. Duplicate registrations, whether
// found up front or raced in by a concurrent request, resolve to the existing
// row.
func (s *registrationServiceImpl) Register(ctx context.Context, userID, openDayID int64, req *dto.RegisterForOpenDayRequest) (*models.Registration, bool, error) {
	exists, err := s.openDayRepo.Exists(ctx, openDayID)
	if err != nil {
		return nil, false, fmt.Errorf("error checking open day: %w", err)
	}
	if !exists {
		return nil, false, apperrors.ErrOpenDayNotFound
	}

	existing, err := s.registrationRepo.GetByUserAndOpenDay(ctx, userID, openDayID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	registration := &models.Registration{
		UserID:           userID,
		OpenDayID:        openDayID,
		AttendanceStatus: models.AttendanceStatusRegistered,
	}
	if req != nil {
		registration.InterestArea = req.InterestArea
		registration.ReceiveUpdates = req.ReceiveUpdates
	}

	if err := s.registrationRepo.Create(ctx, registration); err != nil {
		// A concurrent request won the insert; hand back its row.
		if dberrors.IsUniqueViolation(err) {
			existing, rerr := s.registrationRepo.GetByUserAndOpenDay(ctx, userID, openDayID)
			if rerr != nil {
				return nil, false, rerr
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("error creating registration: %w", err)
	}

	// Re-read so the response carries the joined open day.
	created, err := s.registrationRepo.GetByUserAndOpenDay(ctx, userID, openDayID)
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

// List retrieves all of a user's registrations
func (s *registrationServiceImpl) List(ctx context.Context, userID int64) ([]*models.Registration, error) {
	return s.registrationRepo.ListByUser(ctx, userID)
}
