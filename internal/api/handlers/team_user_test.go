package handlers_test

import (
	"net/http"
	"testing"

	"cmms-backend/internal/api/routes"
	"cmms-backend/internal/database/models"
	"cmms-backend/internal/service"
	"cmms-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// TeamUserHandlerTestSuite drives the team membership endpoints end to end
type TeamUserHandlerTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	httpSuite     *testutils.HTTPTestSuite
}

// SetupSuite runs before all tests in the suite
func (suite *TeamUserHandlerTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	gin.SetMode(gin.TestMode)
	suite.httpSuite = &testutils.HTTPTestSuite{
		Router: routes.SetupRoutes(suite.baseTestSuite.DB, suite.baseTestSuite.Config),
	}
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamUserHandlerTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamUserHandlerTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamUserHandlerTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TeamUserHandlerTestSuite) seedTeamAndUser() (*models.Team, *models.User) {
	team := testutils.NewTeamFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(team).Error)
	user := testutils.NewUserFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)
	return team, user
}

// TestAssignAndListTeamUsers tests assignment shows up on the team's user list
func (suite *TeamUserHandlerTestSuite) TestAssignAndListTeamUsers() {
	team, user := suite.seedTeamAndUser()

	var assignment service.TeamUserResponse
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/team-users", map[string]interface{}{
		"team_id": team.ID,
		"user_id": user.ID,
	})
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &assignment)
	suite.Equal(team.ID, assignment.TeamID)
	suite.Equal(user.ID, assignment.UserID)

	var teamWithUsers service.TeamResponse
	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/"+itoa(team.ID)+"/users", nil)
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &teamWithUsers)
	suite.Len(teamWithUsers.Users, 1)
	suite.Equal(user.UserName, teamWithUsers.Users[0].UserName)
}

// TestAssignUnresolvedReferences tests missing team or user comes back as a request error
func (suite *TeamUserHandlerTestSuite) TestAssignUnresolvedReferences() {
	team, user := suite.seedTeamAndUser()

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/team-users", map[string]interface{}{
		"team_id": 99999,
		"user_id": user.ID,
	})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "team not found")

	recorder = suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/team-users", map[string]interface{}{
		"team_id": team.ID,
		"user_id": 99999,
	})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "user not found")
}

// TestAssignDuplicatePair tests repeating an assignment is a conflict
func (suite *TeamUserHandlerTestSuite) TestAssignDuplicatePair() {
	team, user := suite.seedTeamAndUser()
	body := map[string]interface{}{
		"team_id": team.ID,
		"user_id": user.ID,
	}

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/team-users", body)
	suite.Equal(http.StatusCreated, recorder.Code)

	recorder = suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/team-users", body)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "team user mapping already exists")
}

// TestUnassignUser tests removal leaves both the team and the user in place
func (suite *TeamUserHandlerTestSuite) TestUnassignUser() {
	team, user := suite.seedTeamAndUser()

	var assignment service.TeamUserResponse
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/team-users", map[string]interface{}{
		"team_id": team.ID,
		"user_id": user.ID,
	})
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &assignment)

	recorder = suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/team-users/"+itoa(assignment.ID), nil)
	suite.Equal(http.StatusNoContent, recorder.Code)

	var teamCount, userCount int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.Team{}).Count(&teamCount).Error)
	suite.NoError(suite.baseTestSuite.DB.Model(&models.User{}).Count(&userCount).Error)
	suite.Equal(int64(1), teamCount)
	suite.Equal(int64(1), userCount)

	recorder = suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/team-users/"+itoa(assignment.ID), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "team user mapping not found")
}

// TestTeamUserHandlerTestSuite runs the test suite
func TestTeamUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamUserHandlerTestSuite))
}
