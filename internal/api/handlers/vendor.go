package handlers

import (
	"net/http"

	"cmms-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// VendorHandler handles HTTP requests for vendor operations
type VendorHandler struct {
	vendorService service.VendorServiceInterface
}

// NewVendorHandler creates a new vendor handler
func NewVendorHandler(vendorService service.VendorServiceInterface) *VendorHandler {
	return &VendorHandler{
		vendorService: vendorService,
	}
}

// CreateVendor handles POST /vendors
// @Summary Create a new vendor
// @Description Create a new vendor with the provided details
// @Tags vendors
// @Accept json
// @Produce json
// @Param vendor body service.CreateVendorRequest true "Vendor data"
// @Success 201 {object} service.VendorResponse "Successfully created vendor"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /vendors [post]
func (h *VendorHandler) CreateVendor(c *gin.Context) {
	var req service.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendor, err := h.vendorService.Create(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vendor)
}

// GetVendor handles GET /vendors/:id
// @Summary Get vendor by ID
// @Description Get a specific vendor by its ID
// @Tags vendors
// @Accept json
// @Produce json
// @Param id path int true "Vendor ID"
// @Success 200 {object} service.VendorResponse "Successfully retrieved vendor"
// @Failure 400 {object} ErrorResponse "Invalid vendor ID"
// @Failure 404 {object} ErrorResponse "Vendor not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /vendors/{id} [get]
func (h *VendorHandler) GetVendor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	vendor, err := h.vendorService.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// ListVendors handles GET /vendors
// @Summary List all vendors
// @Description Get all vendors
// @Tags vendors
// @Accept json
// @Produce json
// @Success 200 {array} service.VendorResponse "Successfully retrieved vendors"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /vendors [get]
func (h *VendorHandler) ListVendors(c *gin.Context) {
	vendors, err := h.vendorService.GetAll()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, vendors)
}

// UpdateVendor handles PATCH /vendors/:id
// @Summary Update a vendor
// @Description Update the supplied fields of a vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Param id path int true "Vendor ID"
// @Param vendor body service.UpdateVendorRequest true "Fields to update"
// @Success 200 {object} service.VendorResponse "Successfully updated vendor"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Vendor not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /vendors/{id} [patch]
func (h *VendorHandler) UpdateVendor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendor, err := h.vendorService.Update(id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// DeleteVendor handles DELETE /vendors/:id
// @Summary Delete a vendor
// @Description Delete a vendor by its ID
// @Tags vendors
// @Accept json
// @Produce json
// @Param id path int true "Vendor ID"
// @Success 204 "Successfully deleted vendor"
// @Failure 400 {object} ErrorResponse "Invalid vendor ID"
// @Failure 404 {object} ErrorResponse "Vendor not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /vendors/{id} [delete]
func (h *VendorHandler) DeleteVendor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.vendorService.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
