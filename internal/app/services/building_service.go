package services

import (
	"context"

	"github.com/openday/backend/internal/app/models"
)

// BuildingService defines the interface for campus map data
type BuildingService interface {
	List(ctx context.Context, campus *string) ([]*models.Building, error)
	Campuses(ctx context.Context) ([]string, error)
}

// buildingServiceImpl implements the BuildingService interface
type buildingServiceImpl struct {
	buildingRepo BuildingRepository
}

// NewBuildingService creates a new building service instance
func NewBuildingService(buildingRepo BuildingRepository) BuildingService {
	return &buildingServiceImpl{
		buildingRepo: buildingRepo,
	}
}

// List retrieves buildings, optionally filtered by campus
func (s *buildingServiceImpl) List(ctx context.Context, campus *string) ([]*models.Building, error) {
	return s.buildingRepo.GetAll(ctx, campus)
}

// Campuses retrieves the distinct campus names that have buildings
func (s *buildingServiceImpl) Campuses(ctx context.Context) ([]string, error) {
	return s.buildingRepo.DistinctCampuses(ctx)
}
