package dto

import (
	"github.com/openday/backend/internal/app/models"
)

// BuildingResponse represents a building on the wire
type BuildingResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Code        *string  `json:"code"`
	Description *string  `json:"description"`
	Campus      *string  `json:"campus"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// NewBuildingResponse maps a building row to its response shape
func NewBuildingResponse(building *models.Building) BuildingResponse {
	return BuildingResponse{
		ID:          building.ID,
		Name:        building.Name,
		Code:        building.Code,
		Description: building.Description,
		Campus:      building.Campus,
		Latitude:    building.Latitude,
		Longitude:   building.Longitude,
	}
}

// NewBuildingListResponse maps building rows to their response shapes
func NewBuildingListResponse(buildings []*models.Building) []BuildingResponse {
	resp := make([]BuildingResponse, 0, len(buildings))
	for _, building := range buildings {
		resp = append(resp, NewBuildingResponse(building))
	}
	return resp
}

// SubjectAreaResponse represents a subject area on the wire
type SubjectAreaResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// NewSubjectAreaResponse maps a subject area row to its response shape
func NewSubjectAreaResponse(area *models.SubjectArea) SubjectAreaResponse {
	return SubjectAreaResponse{
		ID:          area.ID,
		Name:        area.Name,
		Description: area.Description,
	}
}

// NewSubjectAreaListResponse maps subject area rows to their response shapes
func NewSubjectAreaListResponse(areas []*models.SubjectArea) []SubjectAreaResponse {
	resp := make([]SubjectAreaResponse, 0, len(areas))
	for _, area := range areas {
		resp = append(resp, NewSubjectAreaResponse(area))
	}
	return resp
}
