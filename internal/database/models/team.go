package models

// Team represents a maintenance crew that work orders can be assigned to
type Team struct {
	BaseModel
	TeamName    string `json:"team_name" gorm:"size:255;not null" validate:"required"`
	Description string `json:"description" gorm:"type:text"`

	// Relationships
	WorkOrders []WorkOrder `json:"work_orders,omitempty" gorm:"foreignKey:TeamID"`
	TeamUsers  []TeamUser  `json:"team_users,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Users      []User      `json:"users,omitempty" gorm:"many2many:team_users"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
