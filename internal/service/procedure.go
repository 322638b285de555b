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

// ProcedureService handles business logic for procedure templates. The
// section/field tree is an owned aggregate: it is created whole with the
// procedure and replaced whole on update.
type ProcedureService struct {
	repo      repository.ProcedureRepositoryInterface
	assetRepo repository.AssetRepositoryInterface
	validator *validator.Validate
}

// Ensure ProcedureService implements ProcedureServiceInterface
var _ ProcedureServiceInterface = (*ProcedureService)(nil)

// NewProcedureService creates a new procedure service
func NewProcedureService(
	repo repository.ProcedureRepositoryInterface,
	assetRepo repository.AssetRepositoryInterface,
	validator *validator.Validate,
) *ProcedureService {
	return &ProcedureService{
		repo:      repo,
		assetRepo: assetRepo,
		validator: validator,
	}
}

// ProcedureFieldRequest represents one field inside a section payload
type ProcedureFieldRequest struct {
	Label     string `json:"label" validate:"required"`
	FieldType string `json:"field_type" validate:"required"`
	Order     int    `json:"order"`
	Required  int    `json:"required"`
	HelpText  string `json:"help_text"`
	Config    string `json:"config"`
}

// ProcedureSectionRequest represents one section with its fields
type ProcedureSectionRequest struct {
	Title       string                  `json:"title" validate:"required"`
	Description string                  `json:"description"`
	Order       int                     `json:"order"`
	Fields      []ProcedureFieldRequest `json:"fields" validate:"dive"`
}

// CreateProcedureRequest represents the request to create a procedure template
type CreateProcedureRequest struct {
	Name        string                    `json:"name" validate:"required"`
	Description string                    `json:"description"`
	AssetID     uint                      `json:"asset_id" validate:"required"`
	Sections    []ProcedureSectionRequest `json:"sections" validate:"dive"`
}

// UpdateProcedureRequest represents the request to update a procedure
// template. A nil Sections pointer leaves the existing tree untouched; any
// non-nil value, empty included, replaces the whole tree.
type UpdateProcedureRequest struct {
	Name        *string                    `json:"name"`
	Description *string                    `json:"description"`
	AssetID     *uint                      `json:"asset_id"`
	Sections    *[]ProcedureSectionRequest `json:"sections" validate:"omitempty,dive"`
}

// ProcedureFieldResponse represents a field in API responses
type ProcedureFieldResponse struct {
	ID        uint   `json:"id"`
	Label     string `json:"label"`
	FieldType string `json:"field_type"`
	Order     int    `json:"order"`
	Required  int    `json:"required"`
	HelpText  string `json:"help_text,omitempty"`
	Config    string `json:"config,omitempty"`
	SectionID uint   `json:"section_id"`
}

// ProcedureSectionResponse represents a section with its ordered fields
type ProcedureSectionResponse struct {
	ID          uint                     `json:"id"`
	Title       string                   `json:"title"`
	Description string                   `json:"description,omitempty"`
	Order       int                      `json:"order"`
	ProcedureID uint                     `json:"procedure_id"`
	Fields      []ProcedureFieldResponse `json:"fields"`
}

// ProcedureResponse represents a procedure template with its full tree
type ProcedureResponse struct {
	ID          uint                       `json:"id"`
	Name        string                     `json:"name"`
	Description string                     `json:"description,omitempty"`
	AssetID     uint                       `json:"asset_id"`
	Sections    []ProcedureSectionResponse `json:"sections"`
}

// Create creates a procedure template together with its whole tree. The
// asset reference is resolved first; on a miss nothing is written.
func (s *ProcedureService) Create(req *CreateProcedureRequest) (*ProcedureResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.checkAsset(req.AssetID); err != nil {
		return nil, err
	}

	procedure := &models.Procedure{
		Name:        req.Name,
		Description: req.Description,
		AssetID:     req.AssetID,
		Sections:    buildSectionTree(req.Sections),
	}

	if err := s.repo.Create(procedure); err != nil {
		return nil, fmt.Errorf("failed to create procedure: %w", err)
	}

	return s.reload(procedure.ID)
}

// GetByID retrieves a procedure with its ordered tree
func (s *ProcedureService) GetByID(id uint) (*ProcedureResponse, error) {
	procedure, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProcedureNotFound
		}
		return nil, fmt.Errorf("failed to get procedure: %w", err)
	}

	return procedureToResponse(procedure), nil
}

// GetAll retrieves all procedures, most recently created first
func (s *ProcedureService) GetAll() ([]ProcedureResponse, error) {
	procedures, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get procedures: %w", err)
	}

	responses := make([]ProcedureResponse, len(procedures))
	for i, procedure := range procedures {
		responses[i] = *procedureToResponse(&procedure)
	}
	return responses, nil
}

// Update applies scalar changes and, when a section list is supplied,
// replaces the whole tree in the same transaction. Replaced sections and
// fields come back with fresh ids.
func (s *ProcedureService) Update(id uint, req *UpdateProcedureRequest) (*ProcedureResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	procedure, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProcedureNotFound
		}
		return nil, fmt.Errorf("failed to get procedure: %w", err)
	}

	if req.AssetID != nil {
		if err := s.checkAsset(*req.AssetID); err != nil {
			return nil, err
		}
		procedure.AssetID = *req.AssetID
	}
	if req.Name != nil {
		procedure.Name = *req.Name
	}
	if req.Description != nil {
		procedure.Description = *req.Description
	}

	var sections []models.ProcedureSection
	replaceSections := req.Sections != nil
	if replaceSections {
		sections = buildSectionTree(*req.Sections)
	}

	// Preloaded tree must not leak into the scalar save
	procedure.Sections = nil
	procedure.Asset = nil

	if err := s.repo.Update(procedure, sections, replaceSections); err != nil {
		return nil, fmt.Errorf("failed to update procedure: %w", err)
	}

	return s.reload(procedure.ID)
}

// Delete removes a procedure with its tree. Work orders referencing the
// template are detached, not deleted.
func (s *ProcedureService) Delete(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProcedureNotFound
		}
		return fmt.Errorf("failed to get procedure: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete procedure: %w", err)
	}
	return nil
}

// checkAsset resolves the asset id, mapping a miss to a reference error
func (s *ProcedureService) checkAsset(assetID uint) error {
	if _, err := s.assetRepo.GetByID(assetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAssetReferenceNotFound
		}
		return fmt.Errorf("failed to check asset: %w", err)
	}
	return nil
}

// reload fetches the procedure fresh so the response carries the ids and
// ordering the transaction actually committed.
func (s *ProcedureService) reload(id uint) (*ProcedureResponse, error) {
	procedure, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload procedure: %w", err)
	}
	return procedureToResponse(procedure), nil
}

// buildSectionTree converts request payload sections into model rows
func buildSectionTree(sections []ProcedureSectionRequest) []models.ProcedureSection {
	tree := make([]models.ProcedureSection, len(sections))
	for i, section := range sections {
		fields := make([]models.ProcedureField, len(section.Fields))
		for j, field := range section.Fields {
			fields[j] = models.ProcedureField{
				Label:     field.Label,
				FieldType: field.FieldType,
				Order:     field.Order,
				Required:  field.Required,
				HelpText:  field.HelpText,
				Config:    field.Config,
			}
		}
		tree[i] = models.ProcedureSection{
			Title:       section.Title,
			Description: section.Description,
			Order:       section.Order,
			Fields:      fields,
		}
	}
	return tree
}

// procedureToResponse converts a Procedure model, tree included, to the API
// shape. Work order responses embed procedures through this as well.
func procedureToResponse(procedure *models.Procedure) *ProcedureResponse {
	resp := &ProcedureResponse{
		ID:          procedure.ID,
		Name:        procedure.Name,
		Description: procedure.Description,
		AssetID:     procedure.AssetID,
		Sections:    make([]ProcedureSectionResponse, len(procedure.Sections)),
	}
	for i, section := range procedure.Sections {
		fields := make([]ProcedureFieldResponse, len(section.Fields))
		for j, field := range section.Fields {
			fields[j] = ProcedureFieldResponse{
				ID:        field.ID,
				Label:     field.Label,
				FieldType: field.FieldType,
				Order:     field.Order,
				Required:  field.Required,
				HelpText:  field.HelpText,
				Config:    field.Config,
				SectionID: field.SectionID,
			}
		}
		resp.Sections[i] = ProcedureSectionResponse{
			ID:          section.ID,
			Title:       section.Title,
			Description: section.Description,
			Order:       section.Order,
			ProcedureID: section.ProcedureID,
			Fields:      fields,
		}
	}
	return resp
}
