package service

import (
	"errors"
	"fmt"

	"cmms-backend/internal/database/models"
	apperrors "cmms-backend/internal/errors"
	"cmms-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	validator *validator.Validate
}

// Ensure TeamService implements TeamServiceInterface
var _ TeamServiceInterface = (*TeamService)(nil)

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	TeamName    string `json:"team_name" validate:"required"`
	Description string `json:"description"`
}

// UpdateTeamRequest represents the request to update a team
type UpdateTeamRequest struct {
	TeamName    *string `json:"team_name"`
	Description *string `json:"description"`
}

// TeamResponse represents a team in API responses. Users is populated only
// by the membership listing endpoint.
type TeamResponse struct {
	ID          uint           `json:"id"`
	TeamName    string         `json:"team_name"`
	Description string         `json:"description,omitempty"`
	Users       []UserResponse `json:"users,omitempty"`
}

// Create creates a new team
func (s *TeamService) Create(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team := &models.Team{
		TeamName:    req.TeamName,
		Description: req.Description,
	}

	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return s.toResponse(team), nil
}

// GetByID retrieves a team by id
func (s *TeamService) GetByID(id uint) (*TeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return s.toResponse(team), nil
}

// GetAll retrieves all teams
func (s *TeamService) GetAll() ([]TeamResponse, error) {
	teams, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i, team := range teams {
		responses[i] = *s.toResponse(&team)
	}
	return responses, nil
}

// Update applies the supplied fields to a team
func (s *TeamService) Update(id uint, req *UpdateTeamRequest) (*TeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if req.TeamName != nil {
		team.TeamName = *req.TeamName
	}
	if req.Description != nil {
		team.Description = *req.Description
	}

	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return s.toResponse(team), nil
}

// Delete removes a team and its membership rows
func (s *TeamService) Delete(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// toResponse converts a Team model to API response
func (s *TeamService) toResponse(team *models.Team) *TeamResponse {
	resp := &TeamResponse{
		ID:          team.ID,
		TeamName:    team.TeamName,
		Description: team.Description,
	}
	if len(team.Users) > 0 {
		resp.Users = make([]UserResponse, len(team.Users))
		for i, user := range team.Users {
			resp.Users[i] = UserResponse{
				ID:       user.ID,
				UserName: user.UserName,
				Role:     user.Role,
			}
		}
	}
	return resp
}
