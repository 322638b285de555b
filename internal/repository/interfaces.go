package repository

import (
	"cmms-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// VendorRepositoryInterface defines the interface for vendor repository operations
type VendorRepositoryInterface interface {
	Create(vendor *models.Vendor) error
	GetByID(id uint) (*models.Vendor, error)
	GetAll() ([]models.Vendor, error)
	Update(vendor *models.Vendor) error
	Delete(id uint) error
}

// AssetRepositoryInterface defines the interface for asset repository operations
type AssetRepositoryInterface interface {
	Create(asset *models.Asset) error
	GetByID(id uint) (*models.Asset, error)
	GetAll() ([]models.Asset, error)
	Update(asset *models.Asset) error
	Delete(id uint) error
}

// PartRepositoryInterface defines the interface for part repository operations
type PartRepositoryInterface interface {
	Create(part *models.Part) error
	GetByID(id uint) (*models.Part, error)
	GetByIDs(ids []uint) ([]models.Part, error)
	GetAll() ([]models.Part, error)
	Update(part *models.Part) error
	Delete(id uint) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uint) (*models.Team, error)
	GetWithUsers(id uint) (*models.Team, error)
	GetAll() ([]models.Team, error)
	Update(team *models.Team) error
	Delete(id uint) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUserName(userName string) (*models.User, error)
	GetAll() ([]models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
}

// TeamUserRepositoryInterface defines the interface for team-user assignment operations
type TeamUserRepositoryInterface interface {
	Create(teamUser *models.TeamUser) error
	GetByID(id uint) (*models.TeamUser, error)
	GetByTeamAndUser(teamID, userID uint) (*models.TeamUser, error)
	GetAll() ([]models.TeamUser, error)
	Delete(id uint) error
}

// CategoryRepositoryInterface defines the interface for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id uint) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	GetByIDs(ids []uint) ([]models.Category, error)
	GetAll() ([]models.Category, error)
}

// WorkOrderRepositoryInterface defines the interface for work order repository
// operations. Create and Update run all writes, junction rows included, in a
// single transaction; a nil categories/partIDs pointer on Update leaves that
// collection untouched while a pointer to an empty slice clears it.
type WorkOrderRepositoryInterface interface {
	Create(workOrder *models.WorkOrder, categories []models.Category, partIDs []uint) error
	GetByID(id uint) (*models.WorkOrder, error)
	GetAll() ([]models.WorkOrder, error)
	Update(workOrder *models.WorkOrder, categories *[]models.Category, partIDs *[]uint) error
	ReplaceCategories(workOrderID uint, categories []models.Category) error
	ReplaceParts(workOrderID uint, partIDs []uint) error
	GetCategoryLinks(workOrderID uint) ([]models.WorkOrderCategory, error)
	GetPartLinks(workOrderID uint) ([]models.WorkOrderPart, error)
	Delete(id uint) error
}

// ProcedureRepositoryInterface defines the interface for procedure template
// repository operations. ReplaceSections is the explicit full-replace of the
// section/field tree: delete all children, insert the new tree, one
// transaction. Update performs scalar updates and, when replaceSections is
// set, the same tree replacement atomically alongside them.
type ProcedureRepositoryInterface interface {
	Create(procedure *models.Procedure) error
	GetByID(id uint) (*models.Procedure, error)
	GetAll() ([]models.Procedure, error)
	Update(procedure *models.Procedure, sections []models.ProcedureSection, replaceSections bool) error
	ReplaceSections(procedureID uint, sections []models.ProcedureSection) error
	Delete(id uint) error
}
