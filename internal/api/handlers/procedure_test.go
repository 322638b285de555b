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

// ProcedureHandlerTestSuite drives the procedure endpoints end to end
type ProcedureHandlerTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	httpSuite     *testutils.HTTPTestSuite
}

// SetupSuite runs before all tests in the suite
func (suite *ProcedureHandlerTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	gin.SetMode(gin.TestMode)
	suite.httpSuite = &testutils.HTTPTestSuite{
		Router: routes.SetupRoutes(suite.baseTestSuite.DB, suite.baseTestSuite.Config),
	}
}

// TearDownSuite runs after all tests in the suite
func (suite *ProcedureHandlerTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProcedureHandlerTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ProcedureHandlerTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ProcedureHandlerTestSuite) seedAsset() *models.Asset {
	asset := testutils.NewAssetFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(asset).Error)
	return asset
}

// TestCreateProcedureOrdersTree tests sections and fields come back sorted by order
func (suite *ProcedureHandlerTestSuite) TestCreateProcedureOrdersTree() {
	asset := suite.seedAsset()

	// sections supplied out of order on purpose
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/procedures", map[string]interface{}{
		"name":     "Monthly PM",
		"asset_id": asset.ID,
		"sections": []map[string]interface{}{
			{
				"title": "Service",
				"order": 2,
				"fields": []map[string]interface{}{
					{"label": "Grease bearings", "field_type": "checkbox", "order": 1},
				},
			},
			{
				"title": "Inspection",
				"order": 1,
				"fields": []map[string]interface{}{
					{"label": "Notes", "field_type": "text", "order": 2},
					{"label": "Oil level ok", "field_type": "checkbox", "order": 1, "required": 1},
				},
			},
		},
	})

	var response service.ProcedureResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal(asset.ID, response.AssetID)
	suite.Len(response.Sections, 2)
	suite.Equal("Inspection", response.Sections[0].Title)
	suite.Equal("Service", response.Sections[1].Title)
	suite.Len(response.Sections[0].Fields, 2)
	suite.Equal("Oil level ok", response.Sections[0].Fields[0].Label)
	suite.Equal(response.Sections[0].ID, response.Sections[0].Fields[0].SectionID)
}

// TestCreateUnresolvedAsset tests a bad asset reference comes back as a request error
func (suite *ProcedureHandlerTestSuite) TestCreateUnresolvedAsset() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/procedures", map[string]interface{}{
		"name":     "Monthly PM",
		"asset_id": 99999,
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "asset not found")

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.Procedure{}).Count(&count).Error)
	suite.Equal(int64(0), count)
}

// TestUpdateSectionsReplaceWholeTree tests a supplied tree replaces and an omitted one survives
func (suite *ProcedureHandlerTestSuite) TestUpdateSectionsReplaceWholeTree() {
	asset := suite.seedAsset()

	var created service.ProcedureResponse
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/procedures", map[string]interface{}{
		"name":     "Monthly PM",
		"asset_id": asset.ID,
		"sections": []map[string]interface{}{
			{"title": "Inspection", "order": 1, "fields": []map[string]interface{}{
				{"label": "Oil level ok", "field_type": "checkbox", "order": 1},
			}},
		},
	})
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &created)
	oldSectionID := created.Sections[0].ID

	// scalar patch without a sections key leaves the tree alone
	var updated service.ProcedureResponse
	recorder = suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/procedures/"+itoa(created.ID), map[string]interface{}{
		"name": "Monthly PM v2",
	})
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &updated)
	suite.Equal("Monthly PM v2", updated.Name)
	suite.Len(updated.Sections, 1)
	suite.Equal(oldSectionID, updated.Sections[0].ID)

	// a supplied tree replaces everything with fresh rows
	recorder = suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/procedures/"+itoa(created.ID), map[string]interface{}{
		"sections": []map[string]interface{}{
			{"title": "Teardown", "order": 1, "fields": []map[string]interface{}{
				{"label": "Photos taken", "field_type": "checkbox", "order": 1},
			}},
		},
	})
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &updated)
	suite.Len(updated.Sections, 1)
	suite.Equal("Teardown", updated.Sections[0].Title)
	suite.NotEqual(oldSectionID, updated.Sections[0].ID)

	// an explicit empty list clears the tree
	recorder = suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/procedures/"+itoa(created.ID), map[string]interface{}{
		"sections": []map[string]interface{}{},
	})
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &updated)
	suite.Empty(updated.Sections)
}

// TestDeleteDetachesWorkOrders tests deleting a template keeps its work orders, detached
func (suite *ProcedureHandlerTestSuite) TestDeleteDetachesWorkOrders() {
	asset := suite.seedAsset()

	var procedure service.ProcedureResponse
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/procedures", map[string]interface{}{
		"name":     "Monthly PM",
		"asset_id": asset.ID,
		"sections": []map[string]interface{}{
			{"title": "Inspection", "order": 1, "fields": []map[string]interface{}{
				{"label": "Oil level", "field_type": "text", "order": 1},
			}},
		},
	})
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &procedure)

	var workOrder service.WorkOrderResponse
	recorder = suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/work-orders", map[string]interface{}{
		"name":         "Run monthly PM",
		"procedure_id": procedure.ID,
	})
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &workOrder)
	suite.NotNil(workOrder.Procedure)
	suite.Equal(procedure, *workOrder.Procedure)

	recorder = suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/procedures/"+itoa(procedure.ID), nil)
	suite.Equal(http.StatusNoContent, recorder.Code)

	var detached service.WorkOrderResponse
	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/work-orders/"+itoa(workOrder.ID), nil)
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &detached)
	suite.Nil(detached.Procedure)
}

// TestGetProcedureNotFound tests a missing id
func (suite *ProcedureHandlerTestSuite) TestGetProcedureNotFound() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/procedures/99999", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "procedure not found")
}

// TestProcedureHandlerTestSuite runs the test suite
func TestProcedureHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProcedureHandlerTestSuite))
}
