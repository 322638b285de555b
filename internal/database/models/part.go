package models

// Part represents a spare part kept in stock for maintenance work
type Part struct {
	BaseModel
	Name           string   `json:"name" gorm:"size:255;not null" validate:"required"`
	UnitsInStock   *int     `json:"units_in_stock"`
	MinimumInStock *int     `json:"minimum_in_stock"`
	UnitCost       *float64 `json:"unit_cost"`
	Description    string   `json:"description" gorm:"type:text"`
	PartType       string   `json:"part_type" gorm:"size:100"`
	Location       string   `json:"location" gorm:"size:255"`
	VendorID       *uint    `json:"vendor_id" gorm:"index"`
	Vendor         *Vendor  `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
}

// TableName returns the table name for Part
func (Part) TableName() string {
	return "parts"
}
