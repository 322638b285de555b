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

// VendorService handles business logic for vendors
type VendorService struct {
	repo      repository.VendorRepositoryInterface
	validator *validator.Validate
}

// Ensure VendorService implements VendorServiceInterface
var _ VendorServiceInterface = (*VendorService)(nil)

// NewVendorService creates a new vendor service
func NewVendorService(repo repository.VendorRepositoryInterface, validator *validator.Validate) *VendorService {
	return &VendorService{
		repo:      repo,
		validator: validator,
	}
}

// CreateVendorRequest represents the request to create a vendor
type CreateVendorRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdateVendorRequest represents the request to update a vendor
type UpdateVendorRequest struct {
	Name *string `json:"name"`
}

// VendorResponse represents a vendor in API responses
type VendorResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Create creates a new vendor
func (s *VendorService) Create(req *CreateVendorRequest) (*VendorResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	vendor := &models.Vendor{Name: req.Name}
	if err := s.repo.Create(vendor); err != nil {
		return nil, fmt.Errorf("failed to create vendor: %w", err)
	}

	return s.toResponse(vendor), nil
}

// GetByID retrieves a vendor by id
func (s *VendorService) GetByID(id uint) (*VendorResponse, error) {
	vendor, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVendorNotFound
		}
		return nil, fmt.Errorf("failed to get vendor: %w", err)
	}

	return s.toResponse(vendor), nil
}

// GetAll retrieves all vendors
func (s *VendorService) GetAll() ([]VendorResponse, error) {
	vendors, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get vendors: %w", err)
	}

	responses := make([]VendorResponse, len(vendors))
	for i, vendor := range vendors {
		responses[i] = *s.toResponse(&vendor)
	}
	return responses, nil
}

// Update applies the supplied fields to a vendor
func (s *VendorService) Update(id uint, req *UpdateVendorRequest) (*VendorResponse, error) {
	vendor, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVendorNotFound
		}
		return nil, fmt.Errorf("failed to get vendor: %w", err)
	}

	if req.Name != nil {
		vendor.Name = *req.Name
	}

	if err := s.repo.Update(vendor); err != nil {
		return nil, fmt.Errorf("failed to update vendor: %w", err)
	}

	return s.toResponse(vendor), nil
}

// Delete removes a vendor
func (s *VendorService) Delete(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrVendorNotFound
		}
		return fmt.Errorf("failed to get vendor: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete vendor: %w", err)
	}
	return nil
}

// toResponse converts a Vendor model to API response
func (s *VendorService) toResponse(vendor *models.Vendor) *VendorResponse {
	return &VendorResponse{
		ID:   vendor.ID,
		Name: vendor.Name,
	}
}
