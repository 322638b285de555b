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

// TeamUserService handles team membership assignments. Both sides of a new
// assignment are resolved before anything is written.
type TeamUserService struct {
	repo      repository.TeamUserRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// Ensure TeamUserService implements TeamUserServiceInterface
var _ TeamUserServiceInterface = (*TeamUserService)(nil)

// NewTeamUserService creates a new team-user assignment service
func NewTeamUserService(
	repo repository.TeamUserRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	validator *validator.Validate,
) *TeamUserService {
	return &TeamUserService{
		repo:      repo,
		teamRepo:  teamRepo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// AssignTeamUserRequest represents the request to put a user on a team
type AssignTeamUserRequest struct {
	TeamID uint `json:"team_id" validate:"required"`
	UserID uint `json:"user_id" validate:"required"`
}

// TeamUserResponse represents a single team membership row
type TeamUserResponse struct {
	ID     uint `json:"id"`
	TeamID uint `json:"team_id"`
	UserID uint `json:"user_id"`
}

// Assign puts a user on a team. The team and user must both exist and the
// pair must not already be assigned.
func (s *TeamUserService) Assign(req *AssignTeamUserRequest) (*TeamUserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.teamRepo.GetByID(req.TeamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamReferenceNotFound
		}
		return nil, fmt.Errorf("failed to check team: %w", err)
	}
	if _, err := s.userRepo.GetByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserReferenceNotFound
		}
		return nil, fmt.Errorf("failed to check user: %w", err)
	}

	if _, err := s.repo.GetByTeamAndUser(req.TeamID, req.UserID); err == nil {
		return nil, apperrors.ErrTeamUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check assignment: %w", err)
	}

	teamUser := &models.TeamUser{
		TeamID: req.TeamID,
		UserID: req.UserID,
	}
	if err := s.repo.Create(teamUser); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	return s.toResponse(teamUser), nil
}

// GetAll retrieves all team membership rows
func (s *TeamUserService) GetAll() ([]TeamUserResponse, error) {
	teamUsers, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}

	responses := make([]TeamUserResponse, len(teamUsers))
	for i, teamUser := range teamUsers {
		responses[i] = *s.toResponse(&teamUser)
	}
	return responses, nil
}

// GetTeamWithUsers returns a team together with its member users
func (s *TeamUserService) GetTeamWithUsers(teamID uint) (*TeamResponse, error) {
	team, err := s.teamRepo.GetWithUsers(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	resp := &TeamResponse{
		ID:          team.ID,
		TeamName:    team.TeamName,
		Description: team.Description,
		Users:       make([]UserResponse, len(team.Users)),
	}
	for i, user := range team.Users {
		resp.Users[i] = UserResponse{
			ID:       user.ID,
			UserName: user.UserName,
			Role:     user.Role,
		}
	}
	return resp, nil
}

// Unassign removes a membership row by its id
func (s *TeamUserService) Unassign(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamUserNotFound
		}
		return fmt.Errorf("failed to get assignment: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return nil
}

// toResponse converts a TeamUser model to API response
func (s *TeamUserService) toResponse(teamUser *models.TeamUser) *TeamUserResponse {
	return &TeamUserResponse{
		ID:     teamUser.ID,
		TeamID: teamUser.TeamID,
		UserID: teamUser.UserID,
	}
}
