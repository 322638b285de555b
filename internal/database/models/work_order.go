package models

import (
	"time"
)

// WorkOrderStatusOpen is the status assigned to work orders created without one.
const WorkOrderStatusOpen = "open"

// WorkOrder represents a maintenance task, optionally tied to a team, an
// asset, a vendor and a procedure template. Categories and parts are owned
// collections replaced wholesale on update, never patched row by row.
type WorkOrder struct {
	BaseModel
	Name                 string     `json:"name" gorm:"size:255;not null" validate:"required"`
	Description          string     `json:"description" gorm:"type:text"`
	EstimatedTimeHours   *int       `json:"estimated_time_hours"`
	EstimatedTimeMinutes *int       `json:"estimated_time_minutes"`
	DueDate              *time.Time `json:"due_date" gorm:"type:date"`
	StartDate            *time.Time `json:"start_date" gorm:"type:date"`
	Recurrence           string     `json:"recurrence" gorm:"size:100"`
	WorkType             string     `json:"work_type" gorm:"size:100"`
	Priority             string     `json:"priority" gorm:"size:50"`
	Status               string     `json:"status" gorm:"size:50;not null;default:open"`
	Location             string     `json:"location" gorm:"size:255"`

	TeamID      *uint `json:"team_id" gorm:"index"`
	AssetID     *uint `json:"asset_id" gorm:"index"`
	VendorID    *uint `json:"vendor_id" gorm:"index"`
	ProcedureID *uint `json:"procedure_id" gorm:"index"`

	Team      *Team      `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	Asset     *Asset     `json:"asset,omitempty" gorm:"foreignKey:AssetID"`
	Vendor    *Vendor    `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
	Procedure *Procedure `json:"procedure,omitempty" gorm:"foreignKey:ProcedureID"`

	// Owned collections
	Categories     []Category      `json:"categories,omitempty" gorm:"many2many:work_order_categories;constraint:OnDelete:CASCADE"`
	WorkOrderParts []WorkOrderPart `json:"work_order_parts,omitempty" gorm:"foreignKey:WorkOrderID;constraint:OnDelete:CASCADE"`
	Parts          []Part          `json:"parts,omitempty" gorm:"many2many:work_order_parts"`
}

// TableName returns the table name for WorkOrder
func (WorkOrder) TableName() string {
	return "work_orders"
}

// WorkOrderCategory is the plain membership junction between work orders and
// categories. Repositories write this table directly; the many2many tags on
// WorkOrder/Category are read-side only.
type WorkOrderCategory struct {
	WorkOrderID uint `json:"work_order_id" gorm:"primaryKey"`
	CategoryID  uint `json:"category_id" gorm:"primaryKey"`
}

// TableName returns the table name for WorkOrderCategory
func (WorkOrderCategory) TableName() string {
	return "work_order_categories"
}
