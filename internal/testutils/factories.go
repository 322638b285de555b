package testutils

import (
	"fmt"
	"sync/atomic"

	"cmms-backend/internal/database/models"
)

var factorySeq uint64

// nextSeq returns a process-unique suffix so factories never collide on
// unique columns.
func nextSeq() uint64 {
	return atomic.AddUint64(&factorySeq, 1)
}

// VendorFactory provides methods to create test Vendor data
type VendorFactory struct{}

// NewVendorFactory creates a new VendorFactory
func NewVendorFactory() *VendorFactory {
	return &VendorFactory{}
}

// Create creates a test Vendor with default values
func (f *VendorFactory) Create() *models.Vendor {
	return &models.Vendor{
		Name: fmt.Sprintf("Test Vendor %d", nextSeq()),
	}
}

// WithName sets a custom name for the vendor
func (f *VendorFactory) WithName(name string) *models.Vendor {
	vendor := f.Create()
	vendor.Name = name
	return vendor
}

// AssetFactory provides methods to create test Asset data
type AssetFactory struct{}

// NewAssetFactory creates a new AssetFactory
func NewAssetFactory() *AssetFactory {
	return &AssetFactory{}
}

// Create creates a test Asset with default values
func (f *AssetFactory) Create() *models.Asset {
	return &models.Asset{
		AssetName:    fmt.Sprintf("Test Asset %d", nextSeq()),
		Location:     "Building A",
		Criticality:  "medium",
		Manufacturer: "Acme",
		Model:        "X-100",
		AssetType:    "pump",
		Status:       models.AssetStatusRunning,
	}
}

// WithVendor sets the vendor for the asset
func (f *AssetFactory) WithVendor(vendorID uint) *models.Asset {
	asset := f.Create()
	asset.VendorID = &vendorID
	return asset
}

// WithStatus sets a custom status for the asset
func (f *AssetFactory) WithStatus(status string) *models.Asset {
	asset := f.Create()
	asset.Status = status
	return asset
}

// PartFactory provides methods to create test Part data
type PartFactory struct{}

// NewPartFactory creates a new PartFactory
func NewPartFactory() *PartFactory {
	return &PartFactory{}
}

// Create creates a test Part with default values
func (f *PartFactory) Create() *models.Part {
	stock := 10
	cost := 9.99
	return &models.Part{
		Name:         fmt.Sprintf("Test Part %d", nextSeq()),
		UnitsInStock: &stock,
		UnitCost:     &cost,
		PartType:     "filter",
		Location:     "Storeroom 1",
	}
}

// WithVendor sets the vendor for the part
func (f *PartFactory) WithVendor(vendorID uint) *models.Part {
	part := f.Create()
	part.VendorID = &vendorID
	return part
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		TeamName:    fmt.Sprintf("Test Team %d", nextSeq()),
		Description: "A team for testing purposes",
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. The password column holds
// a fixed bcrypt hash of "password"; repository tests never verify it.
func (f *UserFactory) Create() *models.User {
	return &models.User{
		UserName: fmt.Sprintf("testuser%d", nextSeq()),
		Password: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Role:     "technician",
	}
}

// WithUserName sets a custom user name
func (f *UserFactory) WithUserName(userName string) *models.User {
	user := f.Create()
	user.UserName = userName
	return user
}

// CategoryFactory provides methods to create test Category data
type CategoryFactory struct{}

// NewCategoryFactory creates a new CategoryFactory
func NewCategoryFactory() *CategoryFactory {
	return &CategoryFactory{}
}

// Create creates a test Category with default values
func (f *CategoryFactory) Create() *models.Category {
	return &models.Category{
		Name: fmt.Sprintf("Test Category %d", nextSeq()),
	}
}

// WithName sets a custom name for the category
func (f *CategoryFactory) WithName(name string) *models.Category {
	category := f.Create()
	category.Name = name
	return category
}

// WorkOrderFactory provides methods to create test WorkOrder data
type WorkOrderFactory struct{}

// NewWorkOrderFactory creates a new WorkOrderFactory
func NewWorkOrderFactory() *WorkOrderFactory {
	return &WorkOrderFactory{}
}

// Create creates a test WorkOrder with default values
func (f *WorkOrderFactory) Create() *models.WorkOrder {
	return &models.WorkOrder{
		Name:        fmt.Sprintf("Test Work Order %d", nextSeq()),
		Description: "A work order for testing purposes",
		Priority:    "medium",
		Status:      models.WorkOrderStatusOpen,
		WorkType:    "corrective",
	}
}

// WithVendor sets the vendor for the work order
func (f *WorkOrderFactory) WithVendor(vendorID uint) *models.WorkOrder {
	workOrder := f.Create()
	workOrder.VendorID = &vendorID
	return workOrder
}

// WithProcedure sets the procedure for the work order
func (f *WorkOrderFactory) WithProcedure(procedureID uint) *models.WorkOrder {
	workOrder := f.Create()
	workOrder.ProcedureID = &procedureID
	return workOrder
}

// ProcedureFactory provides methods to create test Procedure data
type ProcedureFactory struct{}

// NewProcedureFactory creates a new ProcedureFactory
func NewProcedureFactory() *ProcedureFactory {
	return &ProcedureFactory{}
}

// Create creates a test Procedure bound to the given asset, without sections
func (f *ProcedureFactory) Create(assetID uint) *models.Procedure {
	return &models.Procedure{
		Name:        fmt.Sprintf("Test Procedure %d", nextSeq()),
		Description: "A procedure for testing purposes",
		AssetID:     assetID,
	}
}

// WithSections creates a test Procedure carrying the given section tree
func (f *ProcedureFactory) WithSections(assetID uint, sections []models.ProcedureSection) *models.Procedure {
	procedure := f.Create(assetID)
	procedure.Sections = sections
	return procedure
}

// Section builds one section with fields, for composing trees in tests
func Section(title string, order int, fields ...models.ProcedureField) models.ProcedureSection {
	return models.ProcedureSection{
		Title:  title,
		Order:  order,
		Fields: fields,
	}
}

// Field builds one procedure field
func Field(label, fieldType string, order int) models.ProcedureField {
	return models.ProcedureField{
		Label:     label,
		FieldType: fieldType,
		Order:     order,
	}
}
