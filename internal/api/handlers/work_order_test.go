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

// WorkOrderHandlerTestSuite drives the full router against the shared database
type WorkOrderHandlerTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	httpSuite     *testutils.HTTPTestSuite
}

// SetupSuite runs before all tests in the suite
func (suite *WorkOrderHandlerTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	gin.SetMode(gin.TestMode)
	suite.httpSuite = &testutils.HTTPTestSuite{
		Router: routes.SetupRoutes(suite.baseTestSuite.DB, suite.baseTestSuite.Config),
	}
}

// TearDownSuite runs after all tests in the suite
func (suite *WorkOrderHandlerTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *WorkOrderHandlerTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *WorkOrderHandlerTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *WorkOrderHandlerTestSuite) seedVendor() *models.Vendor {
	vendor := testutils.NewVendorFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(vendor).Error)
	return vendor
}

func (suite *WorkOrderHandlerTestSuite) seedCategory(name string) *models.Category {
	category := testutils.NewCategoryFactory().WithName(name)
	suite.NoError(suite.baseTestSuite.DB.Create(category).Error)
	return category
}

func (suite *WorkOrderHandlerTestSuite) seedPart() *models.Part {
	part := testutils.NewPartFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(part).Error)
	return part
}

// TestCreateWorkOrder tests the full create path with embedded relationships
func (suite *WorkOrderHandlerTestSuite) TestCreateWorkOrder() {
	vendor := suite.seedVendor()
	mechanical := suite.seedCategory("Mechanical")
	preventive := suite.seedCategory("Preventive")
	part := suite.seedPart()

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/work-orders", map[string]interface{}{
		"name":         "Replace pump seal",
		"priority":     "high",
		"due_date":     "2026-09-15",
		"vendor_id":    vendor.ID,
		"category_ids": []uint{mechanical.ID, preventive.ID},
		"parts":        []uint{part.ID},
	})

	var response service.WorkOrderResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal("Replace pump seal", response.Name)
	suite.Equal(models.WorkOrderStatusOpen, response.Status)
	suite.NotNil(response.DueDate)
	suite.Equal("2026-09-15", *response.DueDate)
	suite.NotNil(response.Vendor)
	suite.Equal(vendor.ID, response.Vendor.ID)
	suite.Len(response.Categories, 2)
	suite.Len(response.Parts, 1)
	suite.Equal(part.ID, response.Parts[0].ID)
}

// TestCreateUnresolvedVendor tests a bad vendor reference comes back as a request error
func (suite *WorkOrderHandlerTestSuite) TestCreateUnresolvedVendor() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/work-orders", map[string]interface{}{
		"name":      "Replace pump seal",
		"vendor_id": 99999,
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "vendor not found")
	suite.assertWorkOrderCount(0)
}

// TestCreatePartialCategorySet tests one bad id in the set rejects the whole request
func (suite *WorkOrderHandlerTestSuite) TestCreatePartialCategorySet() {
	mechanical := suite.seedCategory("Mechanical")

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/work-orders", map[string]interface{}{
		"name":         "Replace pump seal",
		"category_ids": []uint{mechanical.ID, 99999},
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "one or more categories not found")
	suite.assertWorkOrderCount(0)
}

// TestCreateBadDueDate tests a malformed date is rejected before any write
func (suite *WorkOrderHandlerTestSuite) TestCreateBadDueDate() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/work-orders", map[string]interface{}{
		"name":     "Replace pump seal",
		"due_date": "15/09/2026",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
	suite.assertWorkOrderCount(0)
}

// TestGetWorkOrderNotFound tests a missing id and a malformed id
func (suite *WorkOrderHandlerTestSuite) TestGetWorkOrderNotFound() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/work-orders/99999", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "work order not found")

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/work-orders/abc", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
}

// TestUpdateReplacesCollections tests supplied collections are replaced, omitted ones survive
func (suite *WorkOrderHandlerTestSuite) TestUpdateReplacesCollections() {
	mechanical := suite.seedCategory("Mechanical")
	electrical := suite.seedCategory("Electrical")
	part := suite.seedPart()

	var created service.WorkOrderResponse
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/work-orders", map[string]interface{}{
		"name":         "Replace pump seal",
		"category_ids": []uint{mechanical.ID},
		"parts":        []uint{part.ID},
	})
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &created)

	// replace categories, leave parts untouched by omitting the key
	var updated service.WorkOrderResponse
	recorder = suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/work-orders/"+itoa(created.ID), map[string]interface{}{
		"category_ids": []uint{electrical.ID},
	})
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &updated)
	suite.Len(updated.Categories, 1)
	suite.Equal(electrical.ID, updated.Categories[0].ID)
	suite.Len(updated.Parts, 1)

	// an explicit empty list clears the collection
	recorder = suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/work-orders/"+itoa(created.ID), map[string]interface{}{
		"parts": []uint{},
	})
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &updated)
	suite.Len(updated.Categories, 1)
	suite.Empty(updated.Parts)
}

// TestUpdateScalarLeavesLinksAlone tests a pure scalar patch never touches junctions
func (suite *WorkOrderHandlerTestSuite) TestUpdateScalarLeavesLinksAlone() {
	mechanical := suite.seedCategory("Mechanical")

	var created service.WorkOrderResponse
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/work-orders", map[string]interface{}{
		"name":         "Replace pump seal",
		"category_ids": []uint{mechanical.ID},
	})
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &created)

	var updated service.WorkOrderResponse
	recorder = suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/work-orders/"+itoa(created.ID), map[string]interface{}{
		"status": "in_progress",
	})
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &updated)
	suite.Equal("in_progress", updated.Status)
	suite.Len(updated.Categories, 1)
}

// TestUpdateUnresolvedVendorLeavesScalarsAlone tests a bad vendor id fails the
// whole patch, so a scalar change riding along never commits
func (suite *WorkOrderHandlerTestSuite) TestUpdateUnresolvedVendorLeavesScalarsAlone() {
	var created service.WorkOrderResponse
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/work-orders", map[string]interface{}{
		"name": "Replace pump seal",
	})
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &created)

	recorder = suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/work-orders/"+itoa(created.ID), map[string]interface{}{
		"name":      "Renamed",
		"vendor_id": 99999,
	})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "vendor not found")

	var reread service.WorkOrderResponse
	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/work-orders/"+itoa(created.ID), nil)
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &reread)
	suite.Equal("Replace pump seal", reread.Name)
	suite.Nil(reread.Vendor)
}

// TestDeleteWorkOrder tests delete returns no content and the row is gone
func (suite *WorkOrderHandlerTestSuite) TestDeleteWorkOrder() {
	var created service.WorkOrderResponse
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/work-orders", map[string]interface{}{
		"name": "Replace pump seal",
	})
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &created)

	recorder = suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/work-orders/"+itoa(created.ID), nil)
	suite.Equal(http.StatusNoContent, recorder.Code)
	suite.Empty(recorder.Body.Bytes())

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/work-orders/"+itoa(created.ID), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "work order not found")
}

// TestListNewestFirst tests the list comes back most recently created first
func (suite *WorkOrderHandlerTestSuite) TestListNewestFirst() {
	for _, name := range []string{"First", "Second", "Third"} {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/work-orders", map[string]interface{}{
			"name": name,
		})
		suite.Equal(http.StatusCreated, recorder.Code)
	}

	var listed []service.WorkOrderResponse
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/work-orders", nil)
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &listed)
	suite.Len(listed, 3)
	suite.Equal("Third", listed[0].Name)
	suite.Equal("First", listed[2].Name)
}

func (suite *WorkOrderHandlerTestSuite) assertWorkOrderCount(expected int64) {
	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.WorkOrder{}).Count(&count).Error)
	suite.Equal(expected, count)
}

// TestWorkOrderHandlerTestSuite runs the test suite
func TestWorkOrderHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WorkOrderHandlerTestSuite))
}
