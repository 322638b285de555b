package repository

import (
	"testing"

	"cmms-backend/internal/database/models"
	"cmms-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CategoryRepositoryTestSuite tests the CategoryRepository
type CategoryRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CategoryRepository
}

// SetupSuite runs before all tests in the suite
func (suite *CategoryRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewCategoryRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *CategoryRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CategoryRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *CategoryRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *CategoryRepositoryTestSuite) createCategory(name string) *models.Category {
	category := testutils.NewCategoryFactory().WithName(name)
	suite.NoError(suite.repo.Create(category))
	return category
}

// TestGetByName tests name lookup
func (suite *CategoryRepositoryTestSuite) TestGetByName() {
	suite.createCategory("Electrical")

	retrieved, err := suite.repo.GetByName("Electrical")
	suite.NoError(err)
	suite.Equal("Electrical", retrieved.Name)

	_, err = suite.repo.GetByName("Nonexistent")
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestGetAllSortedByName tests categories list alphabetically, not by id
func (suite *CategoryRepositoryTestSuite) TestGetAllSortedByName() {
	suite.createCategory("Preventive")
	suite.createCategory("Electrical")
	suite.createCategory("Mechanical")

	all, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Len(all, 3)
	suite.Equal("Electrical", all[0].Name)
	suite.Equal("Mechanical", all[1].Name)
	suite.Equal("Preventive", all[2].Name)
}

// TestGetByIDs tests the id-set lookup used for reference validation
func (suite *CategoryRepositoryTestSuite) TestGetByIDs() {
	a := suite.createCategory("Safety")
	b := suite.createCategory("Inspection")

	found, err := suite.repo.GetByIDs([]uint{a.ID, b.ID})
	suite.NoError(err)
	suite.Len(found, 2)

	// a missing id just shrinks the result set
	found, err = suite.repo.GetByIDs([]uint{a.ID, 99999})
	suite.NoError(err)
	suite.Len(found, 1)
}

// TestCategoryRepositoryTestSuite runs the test suite
func TestCategoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryRepositoryTestSuite))
}
