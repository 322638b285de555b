package repository

import (
	"cmms-backend/internal/database/models"

	"gorm.io/gorm"
)

// WorkOrderRepository handles database operations for work orders and their
// category/part associations.
type WorkOrderRepository struct {
	db *gorm.DB
}

// Ensure WorkOrderRepository implements WorkOrderRepositoryInterface
var _ WorkOrderRepositoryInterface = (*WorkOrderRepository)(nil)

// NewWorkOrderRepository creates a new work order repository
func NewWorkOrderRepository(db *gorm.DB) *WorkOrderRepository {
	return &WorkOrderRepository{db: db}
}

// withRelations eagerly loads everything the work order representation
// embeds: vendor, the full procedure tree, categories and parts.
func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Vendor").
		Preload("Procedure").
		Preload("Procedure.Sections", sortByOrder).
		Preload("Procedure.Sections.Fields", sortByOrder).
		Preload("Categories").
		Preload("Parts")
}

// Create persists a work order together with its category and part junction
// rows in one transaction. Every part link is written with the default
// quantity; callers cannot supply one.
func (r *WorkOrderRepository) Create(workOrder *models.WorkOrder, categories []models.Category, partIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories", "Parts", "WorkOrderParts", "Team", "Asset", "Vendor", "Procedure").
			Create(workOrder).Error; err != nil {
			return err
		}
		if len(categories) > 0 {
			if err := insertCategoryLinks(tx, workOrder.ID, categories); err != nil {
				return err
			}
		}
		if len(partIDs) > 0 {
			if err := insertPartLinks(tx, workOrder.ID, partIDs); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID retrieves a work order with all embedded relationships
func (r *WorkOrderRepository) GetByID(id uint) (*models.WorkOrder, error) {
	var workOrder models.WorkOrder
	if err := withRelations(r.db).First(&workOrder, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &workOrder, nil
}

// GetAll retrieves all work orders with relationships, most recently created first
func (r *WorkOrderRepository) GetAll() ([]models.WorkOrder, error) {
	var workOrders []models.WorkOrder
	err := withRelations(r.db).Order("id DESC").Find(&workOrders).Error
	return workOrders, err
}

// Update persists scalar changes and, for each non-nil collection pointer,
// replaces that association set wholesale. Everything runs inside one
// transaction, so nothing is committed if any write fails. A pointer to an
// empty slice clears the collection.
func (r *WorkOrderRepository) Update(workOrder *models.WorkOrder, categories *[]models.Category, partIDs *[]uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories", "Parts", "WorkOrderParts", "Team", "Asset", "Vendor", "Procedure").
			Save(workOrder).Error; err != nil {
			return err
		}
		if categories != nil {
			if err := replaceCategoryLinks(tx, workOrder.ID, *categories); err != nil {
				return err
			}
		}
		if partIDs != nil {
			if err := replacePartLinks(tx, workOrder.ID, *partIDs); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplaceCategories swaps the work order's category set for the given one
func (r *WorkOrderRepository) ReplaceCategories(workOrderID uint, categories []models.Category) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return replaceCategoryLinks(tx, workOrderID, categories)
	})
}

// ReplaceParts swaps the work order's part links for the given part ids,
// resetting every quantity to the default.
func (r *WorkOrderRepository) ReplaceParts(workOrderID uint, partIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return replacePartLinks(tx, workOrderID, partIDs)
	})
}

// GetCategoryLinks returns the raw category junction rows for a work order
func (r *WorkOrderRepository) GetCategoryLinks(workOrderID uint) ([]models.WorkOrderCategory, error) {
	var links []models.WorkOrderCategory
	err := r.db.Where("work_order_id = ?", workOrderID).Find(&links).Error
	return links, err
}

// GetPartLinks returns the raw part junction rows for a work order
func (r *WorkOrderRepository) GetPartLinks(workOrderID uint) ([]models.WorkOrderPart, error) {
	var links []models.WorkOrderPart
	err := r.db.Where("work_order_id = ?", workOrderID).Find(&links).Error
	return links, err
}

// Delete removes a work order and both of its junction sets
func (r *WorkOrderRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("work_order_id = ?", id).Delete(&models.WorkOrderCategory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("work_order_id = ?", id).Delete(&models.WorkOrderPart{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.WorkOrder{}, "id = ?", id).Error
	})
}

func replaceCategoryLinks(tx *gorm.DB, workOrderID uint, categories []models.Category) error {
	if err := tx.Where("work_order_id = ?", workOrderID).Delete(&models.WorkOrderCategory{}).Error; err != nil {
		return err
	}
	return insertCategoryLinks(tx, workOrderID, categories)
}

func insertCategoryLinks(tx *gorm.DB, workOrderID uint, categories []models.Category) error {
	if len(categories) == 0 {
		return nil
	}
	links := make([]models.WorkOrderCategory, 0, len(categories))
	for _, category := range categories {
		links = append(links, models.WorkOrderCategory{
			WorkOrderID: workOrderID,
			CategoryID:  category.ID,
		})
	}
	return tx.Create(&links).Error
}

func replacePartLinks(tx *gorm.DB, workOrderID uint, partIDs []uint) error {
	if err := tx.Where("work_order_id = ?", workOrderID).Delete(&models.WorkOrderPart{}).Error; err != nil {
		return err
	}
	return insertPartLinks(tx, workOrderID, partIDs)
}

func insertPartLinks(tx *gorm.DB, workOrderID uint, partIDs []uint) error {
	if len(partIDs) == 0 {
		return nil
	}
	links := make([]models.WorkOrderPart, 0, len(partIDs))
	seen := make(map[uint]bool, len(partIDs))
	for _, partID := range partIDs {
		if seen[partID] {
			continue
		}
		seen[partID] = true
		links = append(links, models.WorkOrderPart{
			WorkOrderID: workOrderID,
			PartID:      partID,
			Quantity:    models.DefaultWorkOrderPartQuantity,
		})
	}
	return tx.Create(&links).Error
}
