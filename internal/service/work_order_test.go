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

// WorkOrderServiceTestSuite defines the test suite for WorkOrderService
type WorkOrderServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockRepo          *mocks.MockWorkOrderRepositoryInterface
	mockVendorRepo    *mocks.MockVendorRepositoryInterface
	mockProcedureRepo *mocks.MockProcedureRepositoryInterface
	mockCategoryRepo  *mocks.MockCategoryRepositoryInterface
	mockPartRepo      *mocks.MockPartRepositoryInterface
	workOrderService  *service.WorkOrderService
}

// SetupTest sets up the test suite
func (suite *WorkOrderServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockWorkOrderRepositoryInterface(suite.ctrl)
	suite.mockVendorRepo = mocks.NewMockVendorRepositoryInterface(suite.ctrl)
	suite.mockProcedureRepo = mocks.NewMockProcedureRepositoryInterface(suite.ctrl)
	suite.mockCategoryRepo = mocks.NewMockCategoryRepositoryInterface(suite.ctrl)
	suite.mockPartRepo = mocks.NewMockPartRepositoryInterface(suite.ctrl)
	suite.workOrderService = service.NewWorkOrderService(
		suite.mockRepo,
		suite.mockVendorRepo,
		suite.mockProcedureRepo,
		suite.mockCategoryRepo,
		suite.mockPartRepo,
		validator.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *WorkOrderServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func uintPtr(v uint) *uint { return &v }

// TestCreateDefaultsStatusToOpen tests a work order without a status lands as open
func (suite *WorkOrderServiceTestSuite) TestCreateDefaultsStatusToOpen() {
	req := &service.CreateWorkOrderRequest{Name: "Fix pump"}

	suite.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Len(0), gomock.Len(0)).
		DoAndReturn(func(workOrder *models.WorkOrder, categories []models.Category, partIDs []uint) error {
			suite.Equal(models.WorkOrderStatusOpen, workOrder.Status)
			workOrder.ID = 1
			return nil
		})
	suite.mockRepo.EXPECT().
		GetByID(uint(1)).
		Return(&models.WorkOrder{
			BaseModel: models.BaseModel{ID: 1},
			Name:      "Fix pump",
			Status:    models.WorkOrderStatusOpen,
		}, nil)

	resp, err := suite.workOrderService.Create(req)

	suite.NoError(err)
	suite.Equal(models.WorkOrderStatusOpen, resp.Status)
}

// TestCreateUnresolvedVendorAbortsBeforeWrite tests a bad vendor id stops everything
func (suite *WorkOrderServiceTestSuite) TestCreateUnresolvedVendorAbortsBeforeWrite() {
	req := &service.CreateWorkOrderRequest{
		Name:     "Fix pump",
		VendorID: uintPtr(42),
	}

	suite.mockVendorRepo.EXPECT().GetByID(uint(42)).Return(nil, gorm.ErrRecordNotFound)
	// no Create expectation: the repository must never be touched

	resp, err := suite.workOrderService.Create(req)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrVendorReferenceNotFound)
}

// TestCreateUnresolvedProcedureAbortsBeforeWrite tests a bad procedure id stops everything
func (suite *WorkOrderServiceTestSuite) TestCreateUnresolvedProcedureAbortsBeforeWrite() {
	req := &service.CreateWorkOrderRequest{
		Name:        "Fix pump",
		ProcedureID: uintPtr(7),
	}

	suite.mockProcedureRepo.EXPECT().GetByID(uint(7)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.workOrderService.Create(req)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrProcedureReferenceNotFound)
}

// TestCreateCategorySetInequality tests a partially resolving id set is rejected whole
func (suite *WorkOrderServiceTestSuite) TestCreateCategorySetInequality() {
	req := &service.CreateWorkOrderRequest{
		Name:        "Fix pump",
		CategoryIDs: []uint{1, 2, 3},
	}

	suite.mockCategoryRepo.EXPECT().
		GetByIDs([]uint{1, 2, 3}).
		Return([]models.Category{{BaseModel: models.BaseModel{ID: 1}}, {BaseModel: models.BaseModel{ID: 2}}}, nil)

	resp, err := suite.workOrderService.Create(req)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrCategoriesNotFound)
}

// TestCreateDuplicateIDsCollapse tests repeated ids validate against the distinct set
func (suite *WorkOrderServiceTestSuite) TestCreateDuplicateIDsCollapse() {
	req := &service.CreateWorkOrderRequest{
		Name:        "Fix pump",
		CategoryIDs: []uint{5, 5, 5},
		PartIDs:     []uint{9, 9},
	}

	categories := []models.Category{{BaseModel: models.BaseModel{ID: 5}, Name: "Mechanical"}}
	suite.mockCategoryRepo.EXPECT().GetByIDs([]uint{5}).Return(categories, nil)
	suite.mockPartRepo.EXPECT().GetByIDs([]uint{9}).Return([]models.Part{{BaseModel: models.BaseModel{ID: 9}}}, nil)

	suite.mockRepo.EXPECT().
		Create(gomock.Any(), categories, []uint{9}).
		DoAndReturn(func(workOrder *models.WorkOrder, _ []models.Category, _ []uint) error {
			workOrder.ID = 3
			return nil
		})
	suite.mockRepo.EXPECT().
		GetByID(uint(3)).
		Return(&models.WorkOrder{
			BaseModel:  models.BaseModel{ID: 3},
			Name:       "Fix pump",
			Status:     models.WorkOrderStatusOpen,
			Categories: categories,
			Parts:      []models.Part{{BaseModel: models.BaseModel{ID: 9}}},
		}, nil)

	resp, err := suite.workOrderService.Create(req)

	suite.NoError(err)
	suite.Len(resp.Categories, 1)
	suite.Len(resp.Parts, 1)
}

// TestCreateBadDateRejected tests a malformed due date never reaches the repository
func (suite *WorkOrderServiceTestSuite) TestCreateBadDateRejected() {
	bad := "15/01/2026"
	req := &service.CreateWorkOrderRequest{
		Name:    "Fix pump",
		DueDate: &bad,
	}

	resp, err := suite.workOrderService.Create(req)

	suite.Nil(resp)
	suite.True(apperrors.IsValidation(err))
}

// TestGetByIDNotFound tests the lookup miss maps to the work order not-found error
func (suite *WorkOrderServiceTestSuite) TestGetByIDNotFound() {
	suite.mockRepo.EXPECT().GetByID(uint(99)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.workOrderService.GetByID(99)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrWorkOrderNotFound)
}

// TestUpdateNilCollectionsStayNil tests omitted collections pass through as nil pointers
func (suite *WorkOrderServiceTestSuite) TestUpdateNilCollectionsStayNil() {
	name := "Renamed"
	req := &service.UpdateWorkOrderRequest{Name: &name}

	existing := &models.WorkOrder{
		BaseModel: models.BaseModel{ID: 4},
		Name:      "Original",
		Status:    models.WorkOrderStatusOpen,
	}
	suite.mockRepo.EXPECT().GetByID(uint(4)).Return(existing, nil)
	suite.mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Nil(), gomock.Nil()).
		DoAndReturn(func(workOrder *models.WorkOrder, categories *[]models.Category, partIDs *[]uint) error {
			suite.Equal("Renamed", workOrder.Name)
			return nil
		})
	suite.mockRepo.EXPECT().
		GetByID(uint(4)).
		Return(&models.WorkOrder{BaseModel: models.BaseModel{ID: 4}, Name: "Renamed", Status: models.WorkOrderStatusOpen}, nil)

	resp, err := suite.workOrderService.Update(4, req)

	suite.NoError(err)
	suite.Equal("Renamed", resp.Name)
}

// TestUpdateUnresolvedVendorAbortsBeforeWrite tests a bad vendor id on update
// stops the whole patch, scalar changes included
func (suite *WorkOrderServiceTestSuite) TestUpdateUnresolvedVendorAbortsBeforeWrite() {
	name := "Renamed"
	req := &service.UpdateWorkOrderRequest{
		Name:     &name,
		VendorID: uintPtr(42),
	}

	existing := &models.WorkOrder{
		BaseModel: models.BaseModel{ID: 6},
		Name:      "Original",
		Status:    models.WorkOrderStatusOpen,
	}
	suite.mockRepo.EXPECT().GetByID(uint(6)).Return(existing, nil)
	suite.mockVendorRepo.EXPECT().GetByID(uint(42)).Return(nil, gorm.ErrRecordNotFound)
	// no Update expectation: the repository must never be touched

	resp, err := suite.workOrderService.Update(6, req)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrVendorReferenceNotFound)
}

// TestUpdateUnresolvedProcedureAbortsBeforeWrite tests a bad procedure id on update
func (suite *WorkOrderServiceTestSuite) TestUpdateUnresolvedProcedureAbortsBeforeWrite() {
	req := &service.UpdateWorkOrderRequest{ProcedureID: uintPtr(7)}

	existing := &models.WorkOrder{
		BaseModel: models.BaseModel{ID: 8},
		Name:      "Original",
		Status:    models.WorkOrderStatusOpen,
	}
	suite.mockRepo.EXPECT().GetByID(uint(8)).Return(existing, nil)
	suite.mockProcedureRepo.EXPECT().GetByID(uint(7)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.workOrderService.Update(8, req)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrProcedureReferenceNotFound)
}

// TestUpdateEmptySliceClears tests explicit empty collections reach the repository as empty sets
func (suite *WorkOrderServiceTestSuite) TestUpdateEmptySliceClears() {
	empty := []uint{}
	req := &service.UpdateWorkOrderRequest{CategoryIDs: &empty, PartIDs: &empty}

	existing := &models.WorkOrder{BaseModel: models.BaseModel{ID: 5}, Name: "WO", Status: models.WorkOrderStatusOpen}
	suite.mockRepo.EXPECT().GetByID(uint(5)).Return(existing, nil)
	suite.mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Not(gomock.Nil()), gomock.Not(gomock.Nil())).
		DoAndReturn(func(workOrder *models.WorkOrder, categories *[]models.Category, partIDs *[]uint) error {
			suite.Empty(*categories)
			suite.Empty(*partIDs)
			return nil
		})
	suite.mockRepo.EXPECT().
		GetByID(uint(5)).
		Return(existing, nil)

	_, err := suite.workOrderService.Update(5, req)

	suite.NoError(err)
}

// TestDeleteNotFound tests deleting a missing work order
func (suite *WorkOrderServiceTestSuite) TestDeleteNotFound() {
	suite.mockRepo.EXPECT().GetByID(uint(11)).Return(nil, gorm.ErrRecordNotFound)

	err := suite.workOrderService.Delete(11)

	suite.ErrorIs(err, apperrors.ErrWorkOrderNotFound)
}

// TestWorkOrderServiceTestSuite runs the test suite
func TestWorkOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkOrderServiceTestSuite))
}
