package repository

import (
	"cmms-backend/internal/database/models"

	"gorm.io/gorm"
)

// ProcedureRepository handles database operations for procedure templates
// and their section/field trees.
type ProcedureRepository struct {
	db *gorm.DB
}

// Ensure ProcedureRepository implements ProcedureRepositoryInterface
var _ ProcedureRepositoryInterface = (*ProcedureRepository)(nil)

// NewProcedureRepository creates a new procedure repository
func NewProcedureRepository(db *gorm.DB) *ProcedureRepository {
	return &ProcedureRepository{db: db}
}

// sortByOrder sorts sections or fields by their order column, insertion
// order breaking ties. Order values are a sort key only and may repeat.
func sortByOrder(db *gorm.DB) *gorm.DB {
	return db.Order(`"order" ASC, id ASC`)
}

// withTree eagerly loads the full section/field tree in retrieval order.
func withTree(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Sections", sortByOrder).
		Preload("Sections.Fields", sortByOrder)
}

// Create persists a procedure with its whole section/field tree in one
// transaction. Nested sections and fields are created through their
// associations, so the tree either lands completely or not at all.
func (r *ProcedureRepository) Create(procedure *models.Procedure) error {
	return r.db.Create(procedure).Error
}

// GetByID retrieves a procedure with its ordered tree
func (r *ProcedureRepository) GetByID(id uint) (*models.Procedure, error) {
	var procedure models.Procedure
	if err := withTree(r.db).First(&procedure, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &procedure, nil
}

// GetAll retrieves all procedures with their trees, most recently created first
func (r *ProcedureRepository) GetAll() ([]models.Procedure, error) {
	var procedures []models.Procedure
	err := withTree(r.db).Order("id DESC").Find(&procedures).Error
	return procedures, err
}

// Update persists scalar changes to a procedure and, when replaceSections is
// set, swaps the whole tree in the same transaction. With replaceSections
// unset the existing tree is left untouched.
func (r *ProcedureRepository) Update(procedure *models.Procedure, sections []models.ProcedureSection, replaceSections bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Sections", "Asset").Save(procedure).Error; err != nil {
			return err
		}
		if replaceSections {
			return replaceSectionTree(tx, procedure.ID, sections)
		}
		return nil
	})
}

// ReplaceSections discards the procedure's current sections and fields and
// inserts the given tree, all inside one transaction. Old rows are deleted,
// not reused, so every section and field gets a fresh id.
func (r *ProcedureRepository) ReplaceSections(procedureID uint, sections []models.ProcedureSection) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return replaceSectionTree(tx, procedureID, sections)
	})
}

func replaceSectionTree(tx *gorm.DB, procedureID uint, sections []models.ProcedureSection) error {
	if err := deleteSectionTree(tx, procedureID); err != nil {
		return err
	}
	if len(sections) == 0 {
		return nil
	}
	for i := range sections {
		sections[i].ID = 0
		sections[i].ProcedureID = procedureID
		for j := range sections[i].Fields {
			sections[i].Fields[j].ID = 0
			sections[i].Fields[j].SectionID = 0
		}
	}
	return tx.Create(&sections).Error
}

// deleteSectionTree removes all fields and sections belonging to a procedure
func deleteSectionTree(tx *gorm.DB, procedureID uint) error {
	var sectionIDs []uint
	if err := tx.Model(&models.ProcedureSection{}).
		Where("procedure_id = ?", procedureID).
		Pluck("id", &sectionIDs).Error; err != nil {
		return err
	}
	if len(sectionIDs) > 0 {
		if err := tx.Where("section_id IN ?", sectionIDs).Delete(&models.ProcedureField{}).Error; err != nil {
			return err
		}
	}
	return tx.Where("procedure_id = ?", procedureID).Delete(&models.ProcedureSection{}).Error
}

// Delete removes a procedure and cascades over its sections and fields.
// Work orders referencing the template keep running: their procedure_id is
// set to NULL in the same transaction.
func (r *ProcedureRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteSectionTree(tx, id); err != nil {
			return err
		}
		if err := tx.Model(&models.WorkOrder{}).
			Where("procedure_id = ?", id).
			Update("procedure_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Procedure{}, "id = ?", id).Error
	})
}
