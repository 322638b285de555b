package handlers_test

import (
	"net/http"
	"testing"

	"cmms-backend/internal/api/routes"
	"cmms-backend/internal/service"
	"cmms-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// CategoryHandlerTestSuite drives the category endpoints end to end
type CategoryHandlerTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	httpSuite     *testutils.HTTPTestSuite
}

// SetupSuite runs before all tests in the suite
func (suite *CategoryHandlerTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	gin.SetMode(gin.TestMode)
	suite.httpSuite = &testutils.HTTPTestSuite{
		Router: routes.SetupRoutes(suite.baseTestSuite.DB, suite.baseTestSuite.Config),
	}
}

// TearDownSuite runs after all tests in the suite
func (suite *CategoryHandlerTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CategoryHandlerTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *CategoryHandlerTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateCategory tests the create path
func (suite *CategoryHandlerTestSuite) TestCreateCategory() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/categories", map[string]interface{}{
		"name": "Preventive",
	})

	var response service.CategoryResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.NotZero(response.ID)
	suite.Equal("Preventive", response.Name)
}

// TestCreateDuplicateName tests the same name twice is a conflict
func (suite *CategoryHandlerTestSuite) TestCreateDuplicateName() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/categories", map[string]interface{}{
		"name": "Preventive",
	})
	suite.Equal(http.StatusCreated, recorder.Code)

	recorder = suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/categories", map[string]interface{}{
		"name": "Preventive",
	})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "category already exists")
}

// TestListSortedByName tests categories list alphabetically
func (suite *CategoryHandlerTestSuite) TestListSortedByName() {
	for _, name := range []string{"Preventive", "Electrical", "Mechanical"} {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/categories", map[string]interface{}{
			"name": name,
		})
		suite.Equal(http.StatusCreated, recorder.Code)
	}

	var listed []service.CategoryResponse
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/categories", nil)
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &listed)
	suite.Len(listed, 3)
	suite.Equal("Electrical", listed[0].Name)
	suite.Equal("Mechanical", listed[1].Name)
	suite.Equal("Preventive", listed[2].Name)
}

// TestCategoryHandlerTestSuite runs the test suite
func TestCategoryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryHandlerTestSuite))
}
