package handlers

import (
	"net/http"

	"cmms-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryHandler handles HTTP requests for category operations
type CategoryHandler struct {
	categoryService service.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService service.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// CreateCategory handles POST /categories
// @Summary Create a new category
// @Description Create a new work order category with a unique name
// @Tags categories
// @Accept json
// @Produce json
// @Param category body service.CreateCategoryRequest true "Category data"
// @Success 201 {object} service.CategoryResponse "Successfully created category"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Category name already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req service.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.categoryService.Create(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// ListCategories handles GET /categories
// @Summary List all categories
// @Description Get all categories ordered by name
// @Tags categories
// @Accept json
// @Produce json
// @Success 200 {array} service.CategoryResponse "Successfully retrieved categories"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.GetAll()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}
