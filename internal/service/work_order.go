package service

import (
	"errors"
	"fmt"
	"time"

	"cmms-backend/internal/database/models"
	apperrors "cmms-backend/internal/errors"
	"cmms-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// dateLayout is the wire format for due_date and start_date
const dateLayout = "2006-01-02"

// WorkOrderService handles business logic for work orders. Vendor and
// procedure references plus both id sets are resolved before any write, so a
// failing reference leaves the work order and its junctions untouched.
type WorkOrderService struct {
	repo          repository.WorkOrderRepositoryInterface
	vendorRepo    repository.VendorRepositoryInterface
	procedureRepo repository.ProcedureRepositoryInterface
	categoryRepo  repository.CategoryRepositoryInterface
	partRepo      repository.PartRepositoryInterface
	validator     *validator.Validate
}

// Ensure WorkOrderService implements WorkOrderServiceInterface
var _ WorkOrderServiceInterface = (*WorkOrderService)(nil)

// NewWorkOrderService creates a new work order service
func NewWorkOrderService(
	repo repository.WorkOrderRepositoryInterface,
	vendorRepo repository.VendorRepositoryInterface,
	procedureRepo repository.ProcedureRepositoryInterface,
	categoryRepo repository.CategoryRepositoryInterface,
	partRepo repository.PartRepositoryInterface,
	validator *validator.Validate,
) *WorkOrderService {
	return &WorkOrderService{
		repo:          repo,
		vendorRepo:    vendorRepo,
		procedureRepo: procedureRepo,
		categoryRepo:  categoryRepo,
		partRepo:      partRepo,
		validator:     validator,
	}
}

// CreateWorkOrderRequest represents the request to create a work order
type CreateWorkOrderRequest struct {
	Name                 string  `json:"name" validate:"required"`
	Description          string  `json:"description"`
	EstimatedTimeHours   *int    `json:"estimated_time_hours"`
	EstimatedTimeMinutes *int    `json:"estimated_time_minutes"`
	DueDate              *string `json:"due_date"`
	StartDate            *string `json:"start_date"`
	Recurrence           string  `json:"recurrence"`
	WorkType             string  `json:"work_type"`
	Priority             string  `json:"priority"`
	Status               *string `json:"status"`
	Location             string  `json:"location"`
	TeamID               *uint   `json:"team_id"`
	AssetID              *uint   `json:"asset_id"`
	VendorID             *uint   `json:"vendor_id"`
	ProcedureID          *uint   `json:"procedure_id"`
	CategoryIDs          []uint  `json:"category_ids"`
	PartIDs              []uint  `json:"parts"`
}

// UpdateWorkOrderRequest represents the request to update a work order. Nil
// leaves a field or collection untouched; a pointer to an empty slice clears
// that collection.
type UpdateWorkOrderRequest struct {
	Name                 *string `json:"name"`
	Description          *string `json:"description"`
	EstimatedTimeHours   *int    `json:"estimated_time_hours"`
	EstimatedTimeMinutes *int    `json:"estimated_time_minutes"`
	DueDate              *string `json:"due_date"`
	StartDate            *string `json:"start_date"`
	Recurrence           *string `json:"recurrence"`
	WorkType             *string `json:"work_type"`
	Priority             *string `json:"priority"`
	Status               *string `json:"status"`
	Location             *string `json:"location"`
	TeamID               *uint   `json:"team_id"`
	AssetID              *uint   `json:"asset_id"`
	VendorID             *uint   `json:"vendor_id"`
	ProcedureID          *uint   `json:"procedure_id"`
	CategoryIDs          *[]uint `json:"category_ids"`
	PartIDs              *[]uint `json:"parts"`
}

// WorkOrderResponse represents a work order with its embedded relationships.
// Parts carry no quantity here; the junction default never surfaces.
type WorkOrderResponse struct {
	ID                   uint               `json:"id"`
	Name                 string             `json:"name"`
	Description          string             `json:"description,omitempty"`
	EstimatedTimeHours   *int               `json:"estimated_time_hours,omitempty"`
	EstimatedTimeMinutes *int               `json:"estimated_time_minutes,omitempty"`
	DueDate              *string            `json:"due_date,omitempty"`
	StartDate            *string            `json:"start_date,omitempty"`
	Recurrence           string             `json:"recurrence,omitempty"`
	WorkType             string             `json:"work_type,omitempty"`
	Priority             string             `json:"priority,omitempty"`
	Status               string             `json:"status"`
	Location             string             `json:"location,omitempty"`
	TeamID               *uint              `json:"team_id,omitempty"`
	AssetID              *uint              `json:"asset_id,omitempty"`
	Vendor               *VendorResponse    `json:"vendor,omitempty"`
	Procedure            *ProcedureResponse `json:"procedure,omitempty"`
	Categories           []CategoryResponse `json:"categories"`
	Parts                []PartResponse     `json:"parts"`
}

// Create creates a work order with its category and part links. All supplied
// references are validated first; on any miss nothing is written.
func (s *WorkOrderService) Create(req *CreateWorkOrderRequest) (*WorkOrderResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.checkVendor(req.VendorID); err != nil {
		return nil, err
	}
	if err := s.checkProcedure(req.ProcedureID); err != nil {
		return nil, err
	}
	categories, err := s.resolveCategories(req.CategoryIDs)
	if err != nil {
		return nil, err
	}
	partIDs, err := s.resolveParts(req.PartIDs)
	if err != nil {
		return nil, err
	}

	dueDate, err := parseDate(req.DueDate, "due_date")
	if err != nil {
		return nil, err
	}
	startDate, err := parseDate(req.StartDate, "start_date")
	if err != nil {
		return nil, err
	}

	status := models.WorkOrderStatusOpen
	if req.Status != nil {
		status = *req.Status
	}

	workOrder := &models.WorkOrder{
		Name:                 req.Name,
		Description:          req.Description,
		EstimatedTimeHours:   req.EstimatedTimeHours,
		EstimatedTimeMinutes: req.EstimatedTimeMinutes,
		DueDate:              dueDate,
		StartDate:            startDate,
		Recurrence:           req.Recurrence,
		WorkType:             req.WorkType,
		Priority:             req.Priority,
		Status:               status,
		Location:             req.Location,
		TeamID:               req.TeamID,
		AssetID:              req.AssetID,
		VendorID:             req.VendorID,
		ProcedureID:          req.ProcedureID,
	}

	if err := s.repo.Create(workOrder, categories, partIDs); err != nil {
		return nil, fmt.Errorf("failed to create work order: %w", err)
	}

	return s.reload(workOrder.ID)
}

// GetByID retrieves a work order with embedded relationships
func (s *WorkOrderService) GetByID(id uint) (*WorkOrderResponse, error) {
	workOrder, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkOrderNotFound
		}
		return nil, fmt.Errorf("failed to get work order: %w", err)
	}

	return s.toResponse(workOrder), nil
}

// GetAll retrieves all work orders, most recently created first
func (s *WorkOrderService) GetAll() ([]WorkOrderResponse, error) {
	workOrders, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get work orders: %w", err)
	}

	responses := make([]WorkOrderResponse, len(workOrders))
	for i, workOrder := range workOrders {
		responses[i] = *s.toResponse(&workOrder)
	}
	return responses, nil
}

// Update applies scalar changes and replaces any supplied collection. A nil
// collection pointer leaves the existing links alone; an empty slice clears
// them. Reference checks run before the transactional write.
func (s *WorkOrderService) Update(id uint, req *UpdateWorkOrderRequest) (*WorkOrderResponse, error) {
	workOrder, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkOrderNotFound
		}
		return nil, fmt.Errorf("failed to get work order: %w", err)
	}

	if req.VendorID != nil {
		if err := s.checkVendor(req.VendorID); err != nil {
			return nil, err
		}
	}
	if req.ProcedureID != nil {
		if err := s.checkProcedure(req.ProcedureID); err != nil {
			return nil, err
		}
	}

	var categoriesPtr *[]models.Category
	if req.CategoryIDs != nil {
		categories, err := s.resolveCategories(*req.CategoryIDs)
		if err != nil {
			return nil, err
		}
		categoriesPtr = &categories
	}

	var partIDsPtr *[]uint
	if req.PartIDs != nil {
		partIDs, err := s.resolveParts(*req.PartIDs)
		if err != nil {
			return nil, err
		}
		partIDsPtr = &partIDs
	}

	if req.Name != nil {
		workOrder.Name = *req.Name
	}
	if req.Description != nil {
		workOrder.Description = *req.Description
	}
	if req.EstimatedTimeHours != nil {
		workOrder.EstimatedTimeHours = req.EstimatedTimeHours
	}
	if req.EstimatedTimeMinutes != nil {
		workOrder.EstimatedTimeMinutes = req.EstimatedTimeMinutes
	}
	if req.DueDate != nil {
		dueDate, err := parseDate(req.DueDate, "due_date")
		if err != nil {
			return nil, err
		}
		workOrder.DueDate = dueDate
	}
	if req.StartDate != nil {
		startDate, err := parseDate(req.StartDate, "start_date")
		if err != nil {
			return nil, err
		}
		workOrder.StartDate = startDate
	}
	if req.Recurrence != nil {
		workOrder.Recurrence = *req.Recurrence
	}
	if req.WorkType != nil {
		workOrder.WorkType = *req.WorkType
	}
	if req.Priority != nil {
		workOrder.Priority = *req.Priority
	}
	if req.Status != nil {
		workOrder.Status = *req.Status
	}
	if req.Location != nil {
		workOrder.Location = *req.Location
	}
	if req.TeamID != nil {
		workOrder.TeamID = req.TeamID
	}
	if req.AssetID != nil {
		workOrder.AssetID = req.AssetID
	}
	if req.VendorID != nil {
		workOrder.VendorID = req.VendorID
	}
	if req.ProcedureID != nil {
		workOrder.ProcedureID = req.ProcedureID
	}

	// Preloaded associations must not leak into the scalar save
	workOrder.Categories = nil
	workOrder.Parts = nil
	workOrder.WorkOrderParts = nil
	workOrder.Vendor = nil
	workOrder.Procedure = nil
	workOrder.Team = nil
	workOrder.Asset = nil

	if err := s.repo.Update(workOrder, categoriesPtr, partIDsPtr); err != nil {
		return nil, fmt.Errorf("failed to update work order: %w", err)
	}

	return s.reload(workOrder.ID)
}

// Delete removes a work order and its junction rows
func (s *WorkOrderService) Delete(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrWorkOrderNotFound
		}
		return fmt.Errorf("failed to get work order: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete work order: %w", err)
	}
	return nil
}

// checkVendor resolves a supplied vendor id, mapping a miss to a reference error
func (s *WorkOrderService) checkVendor(vendorID *uint) error {
	if vendorID == nil {
		return nil
	}
	if _, err := s.vendorRepo.GetByID(*vendorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrVendorReferenceNotFound
		}
		return fmt.Errorf("failed to check vendor: %w", err)
	}
	return nil
}

// checkProcedure resolves a supplied procedure id, mapping a miss to a reference error
func (s *WorkOrderService) checkProcedure(procedureID *uint) error {
	if procedureID == nil {
		return nil
	}
	if _, err := s.procedureRepo.GetByID(*procedureID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProcedureReferenceNotFound
		}
		return fmt.Errorf("failed to check procedure: %w", err)
	}
	return nil
}

// resolveCategories loads the categories for the given id set. Duplicates
// collapse; every distinct id must resolve or the whole set is rejected.
func (s *WorkOrderService) resolveCategories(ids []uint) ([]models.Category, error) {
	distinct := distinctIDs(ids)
	if len(distinct) == 0 {
		return []models.Category{}, nil
	}
	categories, err := s.categoryRepo.GetByIDs(distinct)
	if err != nil {
		return nil, fmt.Errorf("failed to check categories: %w", err)
	}
	if len(categories) != len(distinct) {
		return nil, apperrors.ErrCategoriesNotFound
	}
	return categories, nil
}

// resolveParts verifies the given part id set and returns the distinct ids
func (s *WorkOrderService) resolveParts(ids []uint) ([]uint, error) {
	distinct := distinctIDs(ids)
	if len(distinct) == 0 {
		return []uint{}, nil
	}
	parts, err := s.partRepo.GetByIDs(distinct)
	if err != nil {
		return nil, fmt.Errorf("failed to check parts: %w", err)
	}
	if len(parts) != len(distinct) {
		return nil, apperrors.ErrPartsNotFound
	}
	return distinct, nil
}

// reload fetches the work order fresh so the response reflects what the
// transaction actually committed, associations included.
func (s *WorkOrderService) reload(id uint) (*WorkOrderResponse, error) {
	workOrder, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload work order: %w", err)
	}
	return s.toResponse(workOrder), nil
}

// toResponse converts a WorkOrder model to API response
func (s *WorkOrderService) toResponse(workOrder *models.WorkOrder) *WorkOrderResponse {
	resp := &WorkOrderResponse{
		ID:                   workOrder.ID,
		Name:                 workOrder.Name,
		Description:          workOrder.Description,
		EstimatedTimeHours:   workOrder.EstimatedTimeHours,
		EstimatedTimeMinutes: workOrder.EstimatedTimeMinutes,
		DueDate:              formatDate(workOrder.DueDate),
		StartDate:            formatDate(workOrder.StartDate),
		Recurrence:           workOrder.Recurrence,
		WorkType:             workOrder.WorkType,
		Priority:             workOrder.Priority,
		Status:               workOrder.Status,
		Location:             workOrder.Location,
		TeamID:               workOrder.TeamID,
		AssetID:              workOrder.AssetID,
		Categories:           make([]CategoryResponse, len(workOrder.Categories)),
		Parts:                make([]PartResponse, len(workOrder.Parts)),
	}

	if workOrder.Vendor != nil {
		resp.Vendor = &VendorResponse{
			ID:   workOrder.Vendor.ID,
			Name: workOrder.Vendor.Name,
		}
	}
	if workOrder.Procedure != nil {
		resp.Procedure = procedureToResponse(workOrder.Procedure)
	}
	for i, category := range workOrder.Categories {
		resp.Categories[i] = CategoryResponse{
			ID:   category.ID,
			Name: category.Name,
		}
	}
	for i, part := range workOrder.Parts {
		resp.Parts[i] = PartResponse{
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
	return resp
}

// distinctIDs collapses duplicates while preserving first-seen order
func distinctIDs(ids []uint) []uint {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uint]bool, len(ids))
	distinct := make([]uint, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		distinct = append(distinct, id)
	}
	return distinct
}

// parseDate parses a YYYY-MM-DD value, nil passing through
func parseDate(value *string, field string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, apperrors.NewValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	return &t, nil
}

// formatDate renders a date pointer back to YYYY-MM-DD
func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(dateLayout)
	return &formatted
}
