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

// CategoryService handles business logic for work order categories
type CategoryService struct {
	repo      repository.CategoryRepositoryInterface
	validator *validator.Validate
}

// Ensure CategoryService implements CategoryServiceInterface
var _ CategoryServiceInterface = (*CategoryService)(nil)

// NewCategoryService creates a new category service
func NewCategoryService(repo repository.CategoryRepositoryInterface, validator *validator.Validate) *CategoryService {
	return &CategoryService{
		repo:      repo,
		validator: validator,
	}
}

// CreateCategoryRequest represents the request to create a category
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Create creates a new category, rejecting duplicate names
func (s *CategoryService) Create(req *CreateCategoryRequest) (*CategoryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrCategoryExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}

	category := &models.Category{Name: req.Name}
	if err := s.repo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return s.toResponse(category), nil
}

// GetAll retrieves all categories ordered by name
func (s *CategoryService) GetAll() ([]CategoryResponse, error) {
	categories, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = *s.toResponse(&category)
	}
	return responses, nil
}

// toResponse converts a Category model to API response
func (s *CategoryService) toResponse(category *models.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
	}
}
