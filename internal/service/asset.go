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

// AssetService handles business logic for assets
type AssetService struct {
	repo      repository.AssetRepositoryInterface
	validator *validator.Validate
}

// Ensure AssetService implements AssetServiceInterface
var _ AssetServiceInterface = (*AssetService)(nil)

// NewAssetService creates a new asset service
func NewAssetService(repo repository.AssetRepositoryInterface, validator *validator.Validate) *AssetService {
	return &AssetService{
		repo:      repo,
		validator: validator,
	}
}

// CreateAssetRequest represents the request to create an asset
type CreateAssetRequest struct {
	AssetName     string  `json:"asset_name" validate:"required"`
	Location      string  `json:"location"`
	Criticality   string  `json:"criticality"`
	Description   string  `json:"description"`
	Manufacturer  string  `json:"manufacturer"`
	Model         string  `json:"model"`
	ModelSerialNo string  `json:"model_serial_no"`
	Year          *int    `json:"year"`
	AssetType     string  `json:"asset_type"`
	Status        *string `json:"status"`
	VendorID      *uint   `json:"vendor_id"`
}

// UpdateAssetRequest represents the request to update an asset
type UpdateAssetRequest struct {
	AssetName     *string `json:"asset_name"`
	Location      *string `json:"location"`
	Criticality   *string `json:"criticality"`
	Description   *string `json:"description"`
	Manufacturer  *string `json:"manufacturer"`
	Model         *string `json:"model"`
	ModelSerialNo *string `json:"model_serial_no"`
	Year          *int    `json:"year"`
	AssetType     *string `json:"asset_type"`
	Status        *string `json:"status"`
	VendorID      *uint   `json:"vendor_id"`
}

// AssetResponse represents an asset in API responses
type AssetResponse struct {
	ID            uint   `json:"id"`
	AssetName     string `json:"asset_name"`
	Location      string `json:"location,omitempty"`
	Criticality   string `json:"criticality,omitempty"`
	Description   string `json:"description,omitempty"`
	Manufacturer  string `json:"manufacturer,omitempty"`
	Model         string `json:"model,omitempty"`
	ModelSerialNo string `json:"model_serial_no,omitempty"`
	Year          *int   `json:"year,omitempty"`
	AssetType     string `json:"asset_type,omitempty"`
	Status        string `json:"status"`
	VendorID      *uint  `json:"vendor_id,omitempty"`
}

// Create creates a new asset
func (s *AssetService) Create(req *CreateAssetRequest) (*AssetResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := models.AssetStatusRunning
	if req.Status != nil {
		status = *req.Status
	}

	asset := &models.Asset{
		AssetName:     req.AssetName,
		Location:      req.Location,
		Criticality:   req.Criticality,
		Description:   req.Description,
		Manufacturer:  req.Manufacturer,
		Model:         req.Model,
		ModelSerialNo: req.ModelSerialNo,
		Year:          req.Year,
		AssetType:     req.AssetType,
		Status:        status,
		VendorID:      req.VendorID,
	}

	if err := s.repo.Create(asset); err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	return s.toResponse(asset), nil
}

// GetByID retrieves an asset by id
func (s *AssetService) GetByID(id uint) (*AssetResponse, error) {
	asset, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	return s.toResponse(asset), nil
}

// GetAll retrieves all assets
func (s *AssetService) GetAll() ([]AssetResponse, error) {
	assets, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get assets: %w", err)
	}

	responses := make([]AssetResponse, len(assets))
	for i, asset := range assets {
		responses[i] = *s.toResponse(&asset)
	}
	return responses, nil
}

// Update applies the supplied fields to an asset
func (s *AssetService) Update(id uint, req *UpdateAssetRequest) (*AssetResponse, error) {
	asset, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	if req.AssetName != nil {
		asset.AssetName = *req.AssetName
	}
	if req.Location != nil {
		asset.Location = *req.Location
	}
	if req.Criticality != nil {
		asset.Criticality = *req.Criticality
	}
	if req.Description != nil {
		asset.Description = *req.Description
	}
	if req.Manufacturer != nil {
		asset.Manufacturer = *req.Manufacturer
	}
	if req.Model != nil {
		asset.Model = *req.Model
	}
	if req.ModelSerialNo != nil {
		asset.ModelSerialNo = *req.ModelSerialNo
	}
	if req.Year != nil {
		asset.Year = req.Year
	}
	if req.AssetType != nil {
		asset.AssetType = *req.AssetType
	}
	if req.Status != nil {
		asset.Status = *req.Status
	}
	if req.VendorID != nil {
		asset.VendorID = req.VendorID
	}

	if err := s.repo.Update(asset); err != nil {
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}

	return s.toResponse(asset), nil
}

// Delete removes an asset
func (s *AssetService) Delete(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAssetNotFound
		}
		return fmt.Errorf("failed to get asset: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	return nil
}

// toResponse converts an Asset model to API response
func (s *AssetService) toResponse(asset *models.Asset) *AssetResponse {
	return &AssetResponse{
		ID:            asset.ID,
		AssetName:     asset.AssetName,
		Location:      asset.Location,
		Criticality:   asset.Criticality,
		Description:   asset.Description,
		Manufacturer:  asset.Manufacturer,
		Model:         asset.Model,
		ModelSerialNo: asset.ModelSerialNo,
		Year:          asset.Year,
		AssetType:     asset.AssetType,
		Status:        asset.Status,
		VendorID:      asset.VendorID,
	}
}
