package service

import (
	"errors"
	"fmt"

	"cmms-backend/internal/database/models"
	apperrors "cmms-backend/internal/errors"
	"cmms-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// PartService handles business logic for spare parts
type PartService struct {
	repo      repository.PartRepositoryInterface
	validator *validator.Validate
}

// Ensure PartService implements PartServiceInterface
var _ PartServiceInterface = (*PartService)(nil)

// NewPartService creates a new part service
func NewPartService(repo repository.PartRepositoryInterface, validator *validator.Validate) *PartService {
	return &PartService{
		repo:      repo,
		validator: validator,
	}
}

// CreatePartRequest represents the request to create a part
type CreatePartRequest struct {
	Name           string   `json:"name" validate:"required"`
	UnitsInStock   *int     `json:"units_in_stock"`
	MinimumInStock *int     `json:"minimum_in_stock"`
	UnitCost       *float64 `json:"unit_cost"`
	Description    string   `json:"description"`
	PartType       string   `json:"part_type"`
	Location       string   `json:"location"`
	VendorID       *uint    `json:"vendor_id"`
}

// UpdatePartRequest represents the request to update a part
type UpdatePartRequest struct {
	Name           *string  `json:"name"`
	UnitsInStock   *int     `json:"units_in_stock"`
	MinimumInStock *int     `json:"minimum_in_stock"`
	UnitCost       *float64 `json:"unit_cost"`
	Description    *string  `json:"description"`
	PartType       *string  `json:"part_type"`
	Location       *string  `json:"location"`
	VendorID       *uint    `json:"vendor_id"`
}

// PartResponse represents a part in API responses
type PartResponse struct {
	ID             uint     `json:"id"`
	Name           string   `json:"name"`
	UnitsInStock   *int     `json:"units_in_stock,omitempty"`
	MinimumInStock *int     `json:"minimum_in_stock,omitempty"`
	UnitCost       *float64 `json:"unit_cost,omitempty"`
	Description    string   `json:"description,omitempty"`
	PartType       string   `json:"part_type,omitempty"`
	Location       string   `json:"location,omitempty"`
	VendorID       *uint    `json:"vendor_id,omitempty"`
}

// Create creates a new part
func (s *PartService) Create(req *CreatePartRequest) (*PartResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	part := &models.Part{
		Name:           req.Name,
		UnitsInStock:   req.UnitsInStock,
		MinimumInStock: req.MinimumInStock,
		UnitCost:       req.UnitCost,
		Description:    req.Description,
		PartType:       req.PartType,
		Location:       req.Location,
		VendorID:       req.VendorID,
	}

	if err := s.repo.Create(part); err != nil {
		return nil, fmt.Errorf("failed to create part: %w", err)
	}

	return s.toResponse(part), nil
}

// GetByID retrieves a part by id
func (s *PartService) GetByID(id uint) (*PartResponse, error) {
	part, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPartNotFound
		}
		return nil, fmt.Errorf("failed to get part: %w", err)
	}

	return s.toResponse(part), nil
}

// GetAll retrieves all parts
func (s *PartService) GetAll() ([]PartResponse, error) {
	parts, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get parts: %w", err)
	}

	responses := make([]PartResponse, len(parts))
	for i, part := range parts {
		responses[i] = *s.toResponse(&part)
	}
	return responses, nil
}

// Update applies the supplied fields to a part
func (s *PartService) Update(id uint, req *UpdatePartRequest) (*PartResponse, error) {
	part, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPartNotFound
		}
		return nil, fmt.Errorf("failed to get part: %w", err)
	}

	if req.Name != nil {
		part.Name = *req.Name
	}
	if req.UnitsInStock != nil {
		part.UnitsInStock = req.UnitsInStock
	}
	if req.MinimumInStock != nil {
		part.MinimumInStock = req.MinimumInStock
	}
	if req.UnitCost != nil {
		part.UnitCost = req.UnitCost
	}
	if req.Description != nil {
		part.Description = *req.Description
	}
	if req.PartType != nil {
		part.PartType = *req.PartType
	}
	if req.Location != nil {
		part.Location = *req.Location
	}
	if req.VendorID != nil {
		part.VendorID = req.VendorID
	}

	if err := s.repo.Update(part); err != nil {
		return nil, fmt.Errorf("failed to update part: %w", err)
	}

	return s.toResponse(part), nil
}

// Delete removes a part and its work order links
func (s *PartService) Delete(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPartNotFound
		}
		return fmt.Errorf("failed to get part: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete part: %w", err)
	}
	return nil
}

// toResponse converts a Part model to API response
func (s *PartService) toResponse(part *models.Part) *PartResponse {
	return &PartResponse{
		ID:             part.ID,
		Name:           part.Name,
		UnitsInStock:   part.UnitsInStock,
		MinimumInStock: part.MinimumInStock,
		UnitCost:       part.UnitCost,
		Description:    part.Description,
		PartType:       part.PartType,
		Location:       part.Location,
		VendorID:       part.VendorID,
	}
}
