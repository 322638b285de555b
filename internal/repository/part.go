package repository

import (
	"cmms-backend/internal/database/models"

	"gorm.io/gorm"
)

// PartRepository handles database operations for spare parts
type PartRepository struct {
	db *gorm.DB
}

// Ensure PartRepository implements PartRepositoryInterface
var _ PartRepositoryInterface = (*PartRepository)(nil)

// NewPartRepository creates a new part repository
func NewPartRepository(db *gorm.DB) *PartRepository {
	return &PartRepository{db: db}
}

// Create creates a new part
func (r *PartRepository) Create(part *models.Part) error {
	return r.db.Create(part).Error
}

// GetByID retrieves a part by its id
func (r *PartRepository) GetByID(id uint) (*models.Part, error) {
	var part models.Part
	if err := r.db.First(&part, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &part, nil
}

// GetByIDs retrieves the parts whose ids are in the given set. Missing ids
// are not an error; callers compare the result count against the request.
func (r *PartRepository) GetByIDs(ids []uint) ([]models.Part, error) {
	var parts []models.Part
	if len(ids) == 0 {
		return parts, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&parts).Error
	return parts, err
}

// GetAll retrieves all parts, most recently created first
func (r *PartRepository) GetAll() ([]models.Part, error) {
	var parts []models.Part
	err := r.db.Order("id DESC").Find(&parts).Error
	return parts, err
}

// Update persists changes to a part
func (r *PartRepository) Update(part *models.Part) error {
	return r.db.Save(part).Error
}

// Delete removes a part and its work order links
func (r *PartRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("part_id = ?", id).Delete(&models.WorkOrderPart{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Part{}, "id = ?", id).Error
	})
}
