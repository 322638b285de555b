package models

// Category is a label work orders are grouped by (electrical, preventive, ...)
type Category struct {
	BaseModel
	Name string `json:"name" gorm:"size:255;not null;uniqueIndex" validate:"required"`

	// Relationships
	WorkOrders []WorkOrder `json:"work_orders,omitempty" gorm:"many2many:work_order_categories"`
}

// TableName returns the table name for Category
func (Category) TableName() string {
	return "categories"
}
