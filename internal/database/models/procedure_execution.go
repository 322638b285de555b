package models

import (
	"time"
)

// ProcedureExecution records a procedure filled in against an asset. No
// endpoints exist for executions yet; the tables are migrated so recorded
// values can keep referencing fields by id.
type ProcedureExecution struct {
	BaseModel
	ProcedureID uint       `json:"procedure_id" gorm:"not null;index"`
	AssetID     uint       `json:"asset_id" gorm:"not null;index"`
	PerformedBy *uint      `json:"performed_by"`
	PerformedAt *time.Time `json:"performed_at" gorm:"type:date"`
	Status      string     `json:"status" gorm:"size:50"` // in_progress / completed
}

// TableName returns the table name for ProcedureExecution
func (ProcedureExecution) TableName() string {
	return "procedure_executions"
}

// ProcedureFieldValue is one captured answer within an execution.
type ProcedureFieldValue struct {
	BaseModel
	ExecutionID uint   `json:"execution_id" gorm:"not null;index"`
	FieldID     uint   `json:"field_id" gorm:"not null;index"`
	Value       string `json:"value" gorm:"type:text"`

	Execution *ProcedureExecution `json:"-" gorm:"foreignKey:ExecutionID;constraint:OnDelete:CASCADE"`
	Field     *ProcedureField     `json:"-" gorm:"foreignKey:FieldID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ProcedureFieldValue
func (ProcedureFieldValue) TableName() string {
	return "procedure_field_values"
}
