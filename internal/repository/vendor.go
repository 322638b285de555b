package repository

import (
	"cmms-backend/internal/database/models"

	"gorm.io/gorm"
)

// VendorRepository handles database operations for vendors
type VendorRepository struct {
	db *gorm.DB
}

// Ensure VendorRepository implements VendorRepositoryInterface
var _ VendorRepositoryInterface = (*VendorRepository)(nil)

// NewVendorRepository creates a new vendor repository
func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{db: db}
}

// Create creates a new vendor
func (r *VendorRepository) Create(vendor *models.Vendor) error {
	return r.db.Create(vendor).Error
}

// GetByID retrieves a vendor by its id
func (r *VendorRepository) GetByID(id uint) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.First(&vendor, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

// GetAll retrieves all vendors, most recently created first
func (r *VendorRepository) GetAll() ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := r.db.Order("id DESC").Find(&vendors).Error
	return vendors, err
}

// Update persists changes to a vendor
func (r *VendorRepository) Update(vendor *models.Vendor) error {
	return r.db.Save(vendor).Error
}

// Delete removes a vendor
func (r *VendorRepository) Delete(id uint) error {
	return r.db.Delete(&models.Vendor{}, "id = ?", id).Error
}
