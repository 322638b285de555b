package repository

import (
	"testing"

	"cmms-backend/internal/database/models"
	"cmms-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// WorkOrderRepositoryTestSuite tests the WorkOrderRepository
type WorkOrderRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *WorkOrderRepository
	categories    []models.Category
	parts         []models.Part
}

// SetupSuite runs before all tests in the suite
func (suite *WorkOrderRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewWorkOrderRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *WorkOrderRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and seeds referenced rows
func (suite *WorkOrderRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.categories = nil
	for i := 0; i < 3; i++ {
		category := testutils.NewCategoryFactory().Create()
		suite.NoError(suite.baseTestSuite.DB.Create(category).Error)
		suite.categories = append(suite.categories, *category)
	}

	suite.parts = nil
	for i := 0; i < 3; i++ {
		part := testutils.NewPartFactory().Create()
		suite.NoError(suite.baseTestSuite.DB.Create(part).Error)
		suite.parts = append(suite.parts, *part)
	}
}

// TearDownTest runs after each test
func (suite *WorkOrderRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateWithJunctions tests junction rows land with the work order
func (suite *WorkOrderRepositoryTestSuite) TestCreateWithJunctions() {
	workOrder := testutils.NewWorkOrderFactory().Create()
	partIDs := []uint{suite.parts[0].ID, suite.parts[1].ID}

	suite.NoError(suite.repo.Create(workOrder, suite.categories[:2], partIDs))
	suite.NotZero(workOrder.ID)

	retrieved, err := suite.repo.GetByID(workOrder.ID)
	suite.NoError(err)
	suite.Len(retrieved.Categories, 2)
	suite.Len(retrieved.Parts, 2)
}

// TestPartLinksGetDefaultQuantity tests every part link is written with quantity 1
func (suite *WorkOrderRepositoryTestSuite) TestPartLinksGetDefaultQuantity() {
	workOrder := testutils.NewWorkOrderFactory().Create()
	suite.NoError(suite.repo.Create(workOrder, nil, []uint{suite.parts[0].ID, suite.parts[2].ID}))

	links, err := suite.repo.GetPartLinks(workOrder.ID)
	suite.NoError(err)
	suite.Len(links, 2)
	for _, link := range links {
		suite.Equal(models.DefaultWorkOrderPartQuantity, link.Quantity)
	}
}

// TestCreateCollapsesDuplicatePartIDs tests repeated part ids produce one link
func (suite *WorkOrderRepositoryTestSuite) TestCreateCollapsesDuplicatePartIDs() {
	workOrder := testutils.NewWorkOrderFactory().Create()
	partID := suite.parts[0].ID

	suite.NoError(suite.repo.Create(workOrder, nil, []uint{partID, partID, partID}))

	links, err := suite.repo.GetPartLinks(workOrder.ID)
	suite.NoError(err)
	suite.Len(links, 1)
}

// TestUpdateReplacesCategories tests a non-nil category pointer swaps the whole set
func (suite *WorkOrderRepositoryTestSuite) TestUpdateReplacesCategories() {
	workOrder := testutils.NewWorkOrderFactory().Create()
	suite.NoError(suite.repo.Create(workOrder, suite.categories[:2], nil))

	replacement := suite.categories[2:3]
	suite.NoError(suite.repo.Update(workOrder, &replacement, nil))

	retrieved, err := suite.repo.GetByID(workOrder.ID)
	suite.NoError(err)
	suite.Len(retrieved.Categories, 1)
	suite.Equal(suite.categories[2].ID, retrieved.Categories[0].ID)
}

// TestUpdateNilPointersLeaveLinksAlone tests a scalar-only update keeps junctions
func (suite *WorkOrderRepositoryTestSuite) TestUpdateNilPointersLeaveLinksAlone() {
	workOrder := testutils.NewWorkOrderFactory().Create()
	suite.NoError(suite.repo.Create(workOrder, suite.categories[:2], []uint{suite.parts[0].ID}))

	workOrder.Name = "Renamed"
	suite.NoError(suite.repo.Update(workOrder, nil, nil))

	retrieved, err := suite.repo.GetByID(workOrder.ID)
	suite.NoError(err)
	suite.Equal("Renamed", retrieved.Name)
	suite.Len(retrieved.Categories, 2)
	suite.Len(retrieved.Parts, 1)
}

// TestUpdateEmptySliceClearsLinks tests a pointer to an empty slice empties the set
func (suite *WorkOrderRepositoryTestSuite) TestUpdateEmptySliceClearsLinks() {
	workOrder := testutils.NewWorkOrderFactory().Create()
	suite.NoError(suite.repo.Create(workOrder, suite.categories[:2], []uint{suite.parts[0].ID}))

	empty := []models.Category{}
	emptyParts := []uint{}
	suite.NoError(suite.repo.Update(workOrder, &empty, &emptyParts))

	retrieved, err := suite.repo.GetByID(workOrder.ID)
	suite.NoError(err)
	suite.Empty(retrieved.Categories)
	suite.Empty(retrieved.Parts)
}

// TestReplacePartsResetsQuantity tests replacement links come back at the default quantity
func (suite *WorkOrderRepositoryTestSuite) TestReplacePartsResetsQuantity() {
	workOrder := testutils.NewWorkOrderFactory().Create()
	suite.NoError(suite.repo.Create(workOrder, nil, []uint{suite.parts[0].ID}))

	// bump the quantity behind the repository's back
	suite.NoError(suite.baseTestSuite.DB.Model(&models.WorkOrderPart{}).
		Where("work_order_id = ?", workOrder.ID).
		Update("quantity", 7).Error)

	suite.NoError(suite.repo.ReplaceParts(workOrder.ID, []uint{suite.parts[0].ID, suite.parts[1].ID}))

	links, err := suite.repo.GetPartLinks(workOrder.ID)
	suite.NoError(err)
	suite.Len(links, 2)
	for _, link := range links {
		suite.Equal(models.DefaultWorkOrderPartQuantity, link.Quantity)
	}
}

// TestDeleteRemovesJunctions tests delete takes both junction sets with it
func (suite *WorkOrderRepositoryTestSuite) TestDeleteRemovesJunctions() {
	workOrder := testutils.NewWorkOrderFactory().Create()
	suite.NoError(suite.repo.Create(workOrder, suite.categories[:1], []uint{suite.parts[0].ID}))

	suite.NoError(suite.repo.Delete(workOrder.ID))

	_, err := suite.repo.GetByID(workOrder.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)

	var categoryLinks, partLinks int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.WorkOrderCategory{}).Count(&categoryLinks).Error)
	suite.NoError(suite.baseTestSuite.DB.Model(&models.WorkOrderPart{}).Count(&partLinks).Error)
	suite.Zero(categoryLinks)
	suite.Zero(partLinks)

	// referenced categories and parts are untouched
	var categoryCount, partCount int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.Category{}).Count(&categoryCount).Error)
	suite.NoError(suite.baseTestSuite.DB.Model(&models.Part{}).Count(&partCount).Error)
	suite.Equal(int64(3), categoryCount)
	suite.Equal(int64(3), partCount)
}

// TestGetAllNewestFirst tests listing order
func (suite *WorkOrderRepositoryTestSuite) TestGetAllNewestFirst() {
	first := testutils.NewWorkOrderFactory().Create()
	suite.NoError(suite.repo.Create(first, nil, nil))
	second := testutils.NewWorkOrderFactory().Create()
	suite.NoError(suite.repo.Create(second, nil, nil))

	all, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Len(all, 2)
	suite.Equal(second.ID, all[0].ID)
	suite.Equal(first.ID, all[1].ID)
}

// TestWorkOrderRepositoryTestSuite runs the test suite
func TestWorkOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(WorkOrderRepositoryTestSuite))
}
