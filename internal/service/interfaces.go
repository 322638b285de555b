package service

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// VendorServiceInterface defines the interface for vendor service
type VendorServiceInterface interface {
	Create(req *CreateVendorRequest) (*VendorResponse, error)
	GetByID(id uint) (*VendorResponse, error)
	GetAll() ([]VendorResponse, error)
	Update(id uint, req *UpdateVendorRequest) (*VendorResponse, error)
	Delete(id uint) error
}

// AssetServiceInterface defines the interface for asset service
type AssetServiceInterface interface {
	Create(req *CreateAssetRequest) (*AssetResponse, error)
	GetByID(id uint) (*AssetResponse, error)
	GetAll() ([]AssetResponse, error)
	Update(id uint, req *UpdateAssetRequest) (*AssetResponse, error)
	Delete(id uint) error
}

// PartServiceInterface defines the interface for part service
type PartServiceInterface interface {
	Create(req *CreatePartRequest) (*PartResponse, error)
	GetByID(id uint) (*PartResponse, error)
	GetAll() ([]PartResponse, error)
	Update(id uint, req *UpdatePartRequest) (*PartResponse, error)
	Delete(id uint) error
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(req *CreateTeamRequest) (*TeamResponse, error)
	GetByID(id uint) (*TeamResponse, error)
	GetAll() ([]TeamResponse, error)
	Update(id uint, req *UpdateTeamRequest) (*TeamResponse, error)
	Delete(id uint) error
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Create(req *CreateUserRequest) (*UserResponse, error)
	GetByID(id uint) (*UserResponse, error)
	GetAll() ([]UserResponse, error)
	Update(id uint, req *UpdateUserRequest) (*UserResponse, error)
	Delete(id uint) error
}

// TeamUserServiceInterface defines the interface for team-user assignments
type TeamUserServiceInterface interface {
	Assign(req *AssignTeamUserRequest) (*TeamUserResponse, error)
	GetAll() ([]TeamUserResponse, error)
	GetTeamWithUsers(teamID uint) (*TeamResponse, error)
	Unassign(id uint) error
}

// CategoryServiceInterface defines the interface for category service
type CategoryServiceInterface interface {
	Create(req *CreateCategoryRequest) (*CategoryResponse, error)
	GetAll() ([]CategoryResponse, error)
}

// WorkOrderServiceInterface defines the interface for work order service
type WorkOrderServiceInterface interface {
	Create(req *CreateWorkOrderRequest) (*WorkOrderResponse, error)
	GetByID(id uint) (*WorkOrderResponse, error)
	GetAll() ([]WorkOrderResponse, error)
	Update(id uint, req *UpdateWorkOrderRequest) (*WorkOrderResponse, error)
	Delete(id uint) error
}

// ProcedureServiceInterface defines the interface for procedure template service
type ProcedureServiceInterface interface {
	Create(req *CreateProcedureRequest) (*ProcedureResponse, error)
	GetByID(id uint) (*ProcedureResponse, error)
	GetAll() ([]ProcedureResponse, error)
	Update(id uint, req *UpdateProcedureRequest) (*ProcedureResponse, error)
	Delete(id uint) error
}
