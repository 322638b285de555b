package models

// ProcedureField is a dynamically-typed input inside a section. FieldType is
// a free-form tag (text/number/checkbox/...) and Config is an opaque payload
// (e.g. dropdown choices) stored and returned verbatim, never parsed here.
type ProcedureField struct {
	BaseModel
	Label     string `json:"label" gorm:"size:255;not null" validate:"required"`
	FieldType string `json:"field_type" gorm:"size:50;not null" validate:"required"`
	Order     int    `json:"order" gorm:"column:order;not null"`
	Required  int    `json:"required" gorm:"default:0"`
	HelpText  string `json:"help_text" gorm:"type:text"`
	Config    string `json:"config" gorm:"type:text"`
	SectionID uint   `json:"section_id" gorm:"not null;index"`
}

// TableName returns the table name for ProcedureField
func (ProcedureField) TableName() string {
	return "procedure_fields"
}
