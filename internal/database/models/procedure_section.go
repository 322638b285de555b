package models

// ProcedureSection is one ordered block of a procedure template. Order is a
// sort key only: values need not be contiguous or unique, retrieval sorts
// ascending and breaks ties by insertion order.
type ProcedureSection struct {
	BaseModel
	Title       string `json:"title" gorm:"size:255;not null" validate:"required"`
	Description string `json:"description" gorm:"type:text"`
	Order       int    `json:"order" gorm:"column:order;not null"`
	ProcedureID uint   `json:"procedure_id" gorm:"not null;index"`

	Fields []ProcedureField `json:"fields" gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ProcedureSection
func (ProcedureSection) TableName() string {
	return "procedure_sections"
}
