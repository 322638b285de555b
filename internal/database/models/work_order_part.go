package models

// DefaultWorkOrderPartQuantity is the quantity written for every part link.
// The API accepts flat part-id lists; callers cannot set a quantity, and a
// replace resets it.
const DefaultWorkOrderPartQuantity = 1

// WorkOrderPart is the attributed junction between work orders and parts.
// The (work_order_id, part_id) pair is the primary key, so a part can appear
// at most once per work order.
type WorkOrderPart struct {
	WorkOrderID uint `json:"work_order_id" gorm:"primaryKey"`
	PartID      uint `json:"part_id" gorm:"primaryKey"`
	Quantity    int  `json:"quantity" gorm:"not null;default:1"`

	Part *Part `json:"part,omitempty" gorm:"foreignKey:PartID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for WorkOrderPart
func (WorkOrderPart) TableName() string {
	return "work_order_parts"
}
