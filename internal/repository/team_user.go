package repository

import (
	"cmms-backend/internal/database/models"

	"gorm.io/gorm"
)

// TeamUserRepository handles database operations for team-user assignments
type TeamUserRepository struct {
	db *gorm.DB
}

// Ensure TeamUserRepository implements TeamUserRepositoryInterface
var _ TeamUserRepositoryInterface = (*TeamUserRepository)(nil)

// NewTeamUserRepository creates a new team-user repository
func NewTeamUserRepository(db *gorm.DB) *TeamUserRepository {
	return &TeamUserRepository{db: db}
}

// Create creates a new team-user assignment
func (r *TeamUserRepository) Create(teamUser *models.TeamUser) error {
	return r.db.Create(teamUser).Error
}

// GetByID retrieves an assignment by its id
func (r *TeamUserRepository) GetByID(id uint) (*models.TeamUser, error) {
	var teamUser models.TeamUser
	if err := r.db.First(&teamUser, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &teamUser, nil
}

// GetByTeamAndUser retrieves the assignment for a (team, user) pair
func (r *TeamUserRepository) GetByTeamAndUser(teamID, userID uint) (*models.TeamUser, error) {
	var teamUser models.TeamUser
	err := r.db.Where("team_id = ? AND user_id = ?", teamID, userID).First(&teamUser).Error
	if err != nil {
		return nil, err
	}
	return &teamUser, nil
}

// GetAll retrieves all assignments, most recently created first
func (r *TeamUserRepository) GetAll() ([]models.TeamUser, error) {
	var teamUsers []models.TeamUser
	err := r.db.Order("id DESC").Find(&teamUsers).Error
	return teamUsers, err
}

// Delete removes an assignment
func (r *TeamUserRepository) Delete(id uint) error {
	return r.db.Delete(&models.TeamUser{}, "id = ?", id).Error
}
