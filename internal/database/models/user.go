package models

// User represents a person who can be assigned to teams.
// Password holds a bcrypt hash, never the plain text.
type User struct {
	BaseModel
	UserName string `json:"user_name" gorm:"size:255;not null;uniqueIndex" validate:"required"`
	Password string `json:"-" gorm:"size:255;not null" validate:"required"`
	Role     string `json:"role" gorm:"size:50"`

	// Relationships
	TeamUsers []TeamUser `json:"team_users,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Teams     []Team     `json:"teams,omitempty" gorm:"many2many:team_users"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
