package repository

import (
	"cmms-backend/internal/database/models"

	"gorm.io/gorm"
)

// AssetRepository handles database operations for assets
type AssetRepository struct {
	db *gorm.DB
}

// Ensure AssetRepository implements AssetRepositoryInterface
var _ AssetRepositoryInterface = (*AssetRepository)(nil)

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// Create creates a new asset
func (r *AssetRepository) Create(asset *models.Asset) error {
	return r.db.Create(asset).Error
}

// GetByID retrieves an asset by its id
func (r *AssetRepository) GetByID(id uint) (*models.Asset, error) {
	var asset models.Asset
	if err := r.db.First(&asset, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &asset, nil
}

// GetAll retrieves all assets, most recently created first
func (r *AssetRepository) GetAll() ([]models.Asset, error) {
	var assets []models.Asset
	err := r.db.Order("id DESC").Find(&assets).Error
	return assets, err
}

// Update persists changes to an asset
func (r *AssetRepository) Update(asset *models.Asset) error {
	return r.db.Save(asset).Error
}

// Delete removes an asset
func (r *AssetRepository) Delete(id uint) error {
	return r.db.Delete(&models.Asset{}, "id = ?", id).Error
}
