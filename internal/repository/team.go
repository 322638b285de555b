package repository

import (
	"cmms-backend/internal/database/models"

	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// Ensure TeamRepository implements TeamRepositoryInterface
var _ TeamRepositoryInterface = (*TeamRepository)(nil)

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by its id
func (r *TeamRepository) GetByID(id uint) (*models.Team, error) {
	var team models.Team
	if err := r.db.First(&team, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// GetWithUsers retrieves a team with its member users loaded
func (r *TeamRepository) GetWithUsers(id uint) (*models.Team, error) {
	var team models.Team
	if err := r.db.Preload("Users").First(&team, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves all teams with users, most recently created first
func (r *TeamRepository) GetAll() ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Preload("Users").Order("id DESC").Find(&teams).Error
	return teams, err
}

// Update persists changes to a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Omit("Users", "TeamUsers", "WorkOrders").Save(team).Error
}

// Delete removes a team and its user assignments
func (r *TeamRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", id).Delete(&models.TeamUser{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Team{}, "id = ?", id).Error
	})
}
