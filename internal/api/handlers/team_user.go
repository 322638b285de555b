package handlers

import (
	"net/http"

	"cmms-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamUserHandler handles HTTP requests for team membership assignments
type TeamUserHandler struct {
	teamUserService service.TeamUserServiceInterface
}

// NewTeamUserHandler creates a new team-user handler
func NewTeamUserHandler(teamUserService service.TeamUserServiceInterface) *TeamUserHandler {
	return &TeamUserHandler{
		teamUserService: teamUserService,
	}
}

// AssignUser handles POST /team-users
// @Summary Assign a user to a team
// @Description Create a team membership row for the given team and user
// @Tags team-users
// @Accept json
// @Produce json
// @Param assignment body service.AssignTeamUserRequest true "Assignment data"
// @Success 201 {object} service.TeamUserResponse "Successfully assigned user"
// @Failure 400 {object} ErrorResponse "Invalid request or unresolved team/user"
// @Failure 409 {object} ErrorResponse "User already on the team"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /team-users [post]
func (h *TeamUserHandler) AssignUser(c *gin.Context) {
	var req service.AssignTeamUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.teamUserService.Assign(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// ListAssignments handles GET /team-users
// @Summary List all team memberships
// @Description Get all team membership rows
// @Tags team-users
// @Accept json
// @Produce json
// @Success 200 {array} service.TeamUserResponse "Successfully retrieved assignments"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /team-users [get]
func (h *TeamUserHandler) ListAssignments(c *gin.Context) {
	assignments, err := h.teamUserService.GetAll()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// GetTeamUsers handles GET /teams/:id/users
// @Summary Get a team with its users
// @Description Get a team together with its member users
// @Tags team-users
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} service.TeamResponse "Successfully retrieved team members"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{id}/users [get]
func (h *TeamUserHandler) GetTeamUsers(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	team, err := h.teamUserService.GetTeamWithUsers(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// UnassignUser handles DELETE /team-users/:id
// @Summary Remove a team membership
// @Description Delete a membership row by its ID
// @Tags team-users
// @Accept json
// @Produce json
// @Param id path int true "Assignment ID"
// @Success 204 "Successfully removed assignment"
// @Failure 400 {object} ErrorResponse "Invalid assignment ID"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /team-users/{id} [delete]
func (h *TeamUserHandler) UnassignUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.teamUserService.Unassign(id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
