package models

// AssetStatusRunning is the status assigned to assets created without one.
const AssetStatusRunning = "running"

// Asset represents a physical piece of equipment that is maintained
type Asset struct {
	BaseModel
	AssetName     string  `json:"asset_name" gorm:"size:255;not null" validate:"required"`
	Location      string  `json:"location" gorm:"size:255"`
	Criticality   string  `json:"criticality" gorm:"size:50"`
	Description   string  `json:"description" gorm:"type:text"`
	Manufacturer  string  `json:"manufacturer" gorm:"size:255"`
	Model         string  `json:"model" gorm:"size:255"`
	ModelSerialNo string  `json:"model_serial_no" gorm:"size:255"`
	Year          *int    `json:"year"`
	AssetType     string  `json:"asset_type" gorm:"size:100"`
	Status        string  `json:"status" gorm:"size:50;not null;default:running"`
	VendorID      *uint   `json:"vendor_id" gorm:"index"`
	Vendor        *Vendor `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`

	// Relationships
	WorkOrders []WorkOrder `json:"work_orders,omitempty" gorm:"foreignKey:AssetID"`
	Procedures []Procedure `json:"procedures,omitempty" gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Asset
func (Asset) TableName() string {
	return "assets"
}
