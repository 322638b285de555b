package service_test

import (
	"testing"

	"cmms-backend/internal/database/models"
	apperrors "cmms-backend/internal/errors"
	"cmms-backend/internal/mocks"
	"cmms-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ProcedureServiceTestSuite defines the test suite for ProcedureService
type ProcedureServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockRepo         *mocks.MockProcedureRepositoryInterface
	mockAssetRepo    *mocks.MockAssetRepositoryInterface
	procedureService *service.ProcedureService
}

// SetupTest sets up the test suite
func (suite *ProcedureServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockProcedureRepositoryInterface(suite.ctrl)
	suite.mockAssetRepo = mocks.NewMockAssetRepositoryInterface(suite.ctrl)
	suite.procedureService = service.NewProcedureService(suite.mockRepo, suite.mockAssetRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *ProcedureServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateUnresolvedAssetAbortsBeforeWrite tests a bad asset id stops everything
func (suite *ProcedureServiceTestSuite) TestCreateUnresolvedAssetAbortsBeforeWrite() {
	req := &service.CreateProcedureRequest{
		Name:    "Monthly PM",
		AssetID: 42,
	}

	suite.mockAssetRepo.EXPECT().GetByID(uint(42)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.procedureService.Create(req)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrAssetReferenceNotFound)
}

// TestCreateBuildsWholeTree tests request sections arrive at the repository as one aggregate
func (suite *ProcedureServiceTestSuite) TestCreateBuildsWholeTree() {
	req := &service.CreateProcedureRequest{
		Name:    "Monthly PM",
		AssetID: 1,
		Sections: []service.ProcedureSectionRequest{
			{
				Title: "Inspection",
				Order: 1,
				Fields: []service.ProcedureFieldRequest{
					{Label: "Oil level ok", FieldType: "checkbox", Order: 1, Required: 1},
					{Label: "Notes", FieldType: "text", Order: 2},
				},
			},
		},
	}

	suite.mockAssetRepo.EXPECT().GetByID(uint(1)).Return(&models.Asset{BaseModel: models.BaseModel{ID: 1}}, nil)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(procedure *models.Procedure) error {
			suite.Len(procedure.Sections, 1)
			suite.Len(procedure.Sections[0].Fields, 2)
			suite.Equal("Inspection", procedure.Sections[0].Title)
			procedure.ID = 10
			return nil
		})
	suite.mockRepo.EXPECT().
		GetByID(uint(10)).
		Return(&models.Procedure{
			BaseModel: models.BaseModel{ID: 10},
			Name:      "Monthly PM",
			AssetID:   1,
			Sections: []models.ProcedureSection{
				{
					BaseModel:   models.BaseModel{ID: 100},
					Title:       "Inspection",
					Order:       1,
					ProcedureID: 10,
					Fields: []models.ProcedureField{
						{BaseModel: models.BaseModel{ID: 1000}, Label: "Oil level ok", FieldType: "checkbox", Order: 1, Required: 1, SectionID: 100},
						{BaseModel: models.BaseModel{ID: 1001}, Label: "Notes", FieldType: "text", Order: 2, SectionID: 100},
					},
				},
			},
		}, nil)

	resp, err := suite.procedureService.Create(req)

	suite.NoError(err)
	suite.Equal(uint(10), resp.ID)
	suite.Len(resp.Sections, 1)
	suite.Len(resp.Sections[0].Fields, 2)
	suite.Equal(uint(100), resp.Sections[0].Fields[0].SectionID)
}

// TestUpdateNilSectionsLeavesTreeAlone tests omitting sections never triggers a replace
func (suite *ProcedureServiceTestSuite) TestUpdateNilSectionsLeavesTreeAlone() {
	name := "Renamed PM"
	req := &service.UpdateProcedureRequest{Name: &name}

	existing := &models.Procedure{BaseModel: models.BaseModel{ID: 3}, Name: "Monthly PM", AssetID: 1}
	suite.mockRepo.EXPECT().GetByID(uint(3)).Return(existing, nil)
	suite.mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Nil(), false).
		DoAndReturn(func(procedure *models.Procedure, sections []models.ProcedureSection, replaceSections bool) error {
			suite.Equal("Renamed PM", procedure.Name)
			return nil
		})
	suite.mockRepo.EXPECT().
		GetByID(uint(3)).
		Return(&models.Procedure{BaseModel: models.BaseModel{ID: 3}, Name: "Renamed PM", AssetID: 1}, nil)

	resp, err := suite.procedureService.Update(3, req)

	suite.NoError(err)
	suite.Equal("Renamed PM", resp.Name)
}

// TestUpdateEmptySectionsReplacesWithNothing tests an explicit empty list clears the tree
func (suite *ProcedureServiceTestSuite) TestUpdateEmptySectionsReplacesWithNothing() {
	empty := []service.ProcedureSectionRequest{}
	req := &service.UpdateProcedureRequest{Sections: &empty}

	existing := &models.Procedure{BaseModel: models.BaseModel{ID: 4}, Name: "Monthly PM", AssetID: 1}
	suite.mockRepo.EXPECT().GetByID(uint(4)).Return(existing, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any(), gomock.Len(0), true).Return(nil)
	suite.mockRepo.EXPECT().GetByID(uint(4)).Return(existing, nil)

	_, err := suite.procedureService.Update(4, req)

	suite.NoError(err)
}

// TestUpdateAssetChangeIsChecked tests moving a procedure to another asset validates it
func (suite *ProcedureServiceTestSuite) TestUpdateAssetChangeIsChecked() {
	assetID := uint(77)
	req := &service.UpdateProcedureRequest{AssetID: &assetID}

	existing := &models.Procedure{BaseModel: models.BaseModel{ID: 5}, Name: "Monthly PM", AssetID: 1}
	suite.mockRepo.EXPECT().GetByID(uint(5)).Return(existing, nil)
	suite.mockAssetRepo.EXPECT().GetByID(uint(77)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.procedureService.Update(5, req)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrAssetReferenceNotFound)
}

// TestGetByIDNotFound tests the lookup miss maps to the procedure not-found error
func (suite *ProcedureServiceTestSuite) TestGetByIDNotFound() {
	suite.mockRepo.EXPECT().GetByID(uint(99)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.procedureService.GetByID(99)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrProcedureNotFound)
}

// TestDelete tests delete resolves the procedure first
func (suite *ProcedureServiceTestSuite) TestDelete() {
	existing := &models.Procedure{BaseModel: models.BaseModel{ID: 6}, Name: "Monthly PM", AssetID: 1}
	suite.mockRepo.EXPECT().GetByID(uint(6)).Return(existing, nil)
	suite.mockRepo.EXPECT().Delete(uint(6)).Return(nil)

	suite.NoError(suite.procedureService.Delete(6))
}

// TestProcedureServiceTestSuite runs the test suite
func TestProcedureServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProcedureServiceTestSuite))
}
