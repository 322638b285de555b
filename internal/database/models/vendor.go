package models

// Vendor represents an external supplier of assets and spare parts
type Vendor struct {
	BaseModel
	Name string `json:"name" gorm:"size:255;not null" validate:"required"`

	// Relationships
	Assets []Asset `json:"assets,omitempty" gorm:"foreignKey:VendorID"`
	Parts  []Part  `json:"parts,omitempty" gorm:"foreignKey:VendorID"`
}

// TableName returns the table name for Vendor
func (Vendor) TableName() string {
	return "vendors"
}
