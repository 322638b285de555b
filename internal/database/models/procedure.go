package models

// Procedure is a reusable inspection/maintenance template bound to one asset.
// It owns an ordered tree of sections and their fields; the tree is created
// whole and replaced whole, never patched section by section.
type Procedure struct {
	BaseModel
	Name        string `json:"name" gorm:"size:255;not null" validate:"required"`
	Description string `json:"description" gorm:"type:text"`
	AssetID     uint   `json:"asset_id" gorm:"not null;index" validate:"required"`

	Asset    *Asset             `json:"asset,omitempty" gorm:"foreignKey:AssetID"`
	Sections []ProcedureSection `json:"sections" gorm:"foreignKey:ProcedureID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Procedure
func (Procedure) TableName() string {
	return "procedures"
}
