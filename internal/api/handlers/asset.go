package handlers

import (
	"net/http"

	"cmms-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AssetHandler handles HTTP requests for asset operations
type AssetHandler struct {
	assetService service.AssetServiceInterface
}

// NewAssetHandler creates a new asset handler
func NewAssetHandler(assetService service.AssetServiceInterface) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
	}
}

// CreateAsset handles POST /assets
// @Summary Create a new asset
// @Description Create a new asset with the provided details
// @Tags assets
// @Accept json
// @Produce json
// @Param asset body service.CreateAssetRequest true "Asset data"
// @Success 201 {object} service.AssetResponse "Successfully created asset"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /assets [post]
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req service.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	asset, err := h.assetService.Create(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, asset)
}

// GetAsset handles GET /assets/:id
// @Summary Get asset by ID
// @Description Get a specific asset by its ID
// @Tags assets
// @Accept json
// @Produce json
// @Param id path int true "Asset ID"
// @Success 200 {object} service.AssetResponse "Successfully retrieved asset"
// @Failure 400 {object} ErrorResponse "Invalid asset ID"
// @Failure 404 {object} ErrorResponse "Asset not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /assets/{id} [get]
func (h *AssetHandler) GetAsset(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	asset, err := h.assetService.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

// ListAssets handles GET /assets
// @Summary List all assets
// @Description Get all assets
// @Tags assets
// @Accept json
// @Produce json
// @Success 200 {array} service.AssetResponse "Successfully retrieved assets"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /assets [get]
func (h *AssetHandler) ListAssets(c *gin.Context) {
	assets, err := h.assetService.GetAll()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assets)
}

// UpdateAsset handles PATCH /assets/:id
// @Summary Update an asset
// @Description Update the supplied fields of an asset
// @Tags assets
// @Accept json
// @Produce json
// @Param id path int true "Asset ID"
// @Param asset body service.UpdateAssetRequest true "Fields to update"
// @Success 200 {object} service.AssetResponse "Successfully updated asset"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Asset not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /assets/{id} [patch]
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	asset, err := h.assetService.Update(id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

// DeleteAsset handles DELETE /assets/:id
// @Summary Delete an asset
// @Description Delete an asset by its ID
// @Tags assets
// @Accept json
// @Produce json
// @Param id path int true "Asset ID"
// @Success 204 "Successfully deleted asset"
// @Failure 400 {object} ErrorResponse "Invalid asset ID"
// @Failure 404 {object} ErrorResponse "Asset not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /assets/{id} [delete]
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.assetService.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
