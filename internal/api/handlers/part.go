package handlers

import (
	"net/http"

	"cmms-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PartHandler handles HTTP requests for part operations
type PartHandler struct {
	partService service.PartServiceInterface
}

// NewPartHandler creates a new part handler
func NewPartHandler(partService service.PartServiceInterface) *PartHandler {
	return &PartHandler{
		partService: partService,
	}
}

// CreatePart handles POST /parts
// @Summary Create a new part
// @Description Create a new spare part with the provided details
// @Tags parts
// @Accept json
// @Produce json
// @Param part body service.CreatePartRequest true "Part data"
// @Success 201 {object} service.PartResponse "Successfully created part"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /parts [post]
func (h *PartHandler) CreatePart(c *gin.Context) {
	var req service.CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	part, err := h.partService.Create(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, part)
}

// GetPart handles GET /parts/:id
// @Summary Get part by ID
// @Description Get a specific part by its ID
// @Tags parts
// @Accept json
// @Produce json
// @Param id path int true "Part ID"
// @Success 200 {object} service.PartResponse "Successfully retrieved part"
// @Failure 400 {object} ErrorResponse "Invalid part ID"
// @Failure 404 {object} ErrorResponse "Part not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /parts/{id} [get]
func (h *PartHandler) GetPart(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	part, err := h.partService.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, part)
}

// ListParts handles GET /parts
// @Summary List all parts
// @Description Get all spare parts
// @Tags parts
// @Accept json
// @Produce json
// @Success 200 {array} service.PartResponse "Successfully retrieved parts"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /parts [get]
func (h *PartHandler) ListParts(c *gin.Context) {
	parts, err := h.partService.GetAll()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, parts)
}

// UpdatePart handles PATCH /parts/:id
// @Summary Update a part
// @Description Update the supplied fields of a part
// @Tags parts
// @Accept json
// @Produce json
// @Param id path int true "Part ID"
// @Param part body service.UpdatePartRequest true "Fields to update"
// @Success 200 {object} service.PartResponse "Successfully updated part"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Part not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /parts/{id} [patch]
func (h *PartHandler) UpdatePart(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	part, err := h.partService.Update(id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, part)
}

// DeletePart handles DELETE /parts/:id
// @Summary Delete a part
// @Description Delete a part and its work order links
// @Tags parts
// @Accept json
// @Produce json
// @Param id path int true "Part ID"
// @Success 204 "Successfully deleted part"
// @Failure 400 {object} ErrorResponse "Invalid part ID"
// @Failure 404 {object} ErrorResponse "Part not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /parts/{id} [delete]
func (h *PartHandler) DeletePart(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.partService.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
