package models

// TeamUser is the membership junction between teams and users.
// It carries its own id so a single assignment can be addressed and removed.
type TeamUser struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	TeamID uint `json:"team_id" gorm:"not null;uniqueIndex:uq_team_users" validate:"required"`
	UserID uint `json:"user_id" gorm:"not null;uniqueIndex:uq_team_users" validate:"required"`

	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamUser
func (TeamUser) TableName() string {
	return "team_users"
}
