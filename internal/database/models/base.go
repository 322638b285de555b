package models

import (
	"time"
)

// BaseModel provides common fields for all models with auto-increment primary keys.
// The API addresses every entity by its integer id.
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
