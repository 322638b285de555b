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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockRepo    *mocks.MockUserRepositoryInterface
	userService *service.UserService
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.userService = service.NewUserService(suite.mockRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateHashesPassword tests the stored password is a bcrypt hash, not the plain text
func (suite *UserServiceTestSuite) TestCreateHashesPassword() {
	req := &service.CreateUserRequest{
		UserName: "mrivera",
		Password: "s3cret",
		Role:     "technician",
	}

	suite.mockRepo.EXPECT().GetByUserName("mrivera").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			suite.NotEqual("s3cret", user.Password)
			suite.NoError(bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret")))
			user.ID = 1
			return nil
		})

	resp, err := suite.userService.Create(req)

	suite.NoError(err)
	suite.Equal("mrivera", resp.UserName)
}

// TestCreateDuplicateUserName tests a taken user name is rejected before any write
func (suite *UserServiceTestSuite) TestCreateDuplicateUserName() {
	req := &service.CreateUserRequest{
		UserName: "mrivera",
		Password: "s3cret",
	}

	suite.mockRepo.EXPECT().
		GetByUserName("mrivera").
		Return(&models.User{BaseModel: models.BaseModel{ID: 1}, UserName: "mrivera"}, nil)

	resp, err := suite.userService.Create(req)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUserExists)
}

// TestUpdateRenameCollision tests renaming onto an existing user name is rejected
func (suite *UserServiceTestSuite) TestUpdateRenameCollision() {
	taken := "jchen"
	req := &service.UpdateUserRequest{UserName: &taken}

	suite.mockRepo.EXPECT().
		GetByID(uint(1)).
		Return(&models.User{BaseModel: models.BaseModel{ID: 1}, UserName: "mrivera"}, nil)
	suite.mockRepo.EXPECT().
		GetByUserName("jchen").
		Return(&models.User{BaseModel: models.BaseModel{ID: 2}, UserName: "jchen"}, nil)

	resp, err := suite.userService.Update(1, req)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUserExists)
}

// TestUpdateSameNameSkipsCheck tests sending the unchanged name is not a collision
func (suite *UserServiceTestSuite) TestUpdateSameNameSkipsCheck() {
	same := "mrivera"
	role := "supervisor"
	req := &service.UpdateUserRequest{UserName: &same, Role: &role}

	suite.mockRepo.EXPECT().
		GetByID(uint(1)).
		Return(&models.User{BaseModel: models.BaseModel{ID: 1}, UserName: "mrivera", Role: "technician"}, nil)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			suite.Equal("supervisor", user.Role)
			return nil
		})

	resp, err := suite.userService.Update(1, req)

	suite.NoError(err)
	suite.Equal("supervisor", resp.Role)
}

// TestGetByIDNotFound tests the lookup miss maps to the user not-found error
func (suite *UserServiceTestSuite) TestGetByIDNotFound() {
	suite.mockRepo.EXPECT().GetByID(uint(9)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.userService.GetByID(9)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

// TestUserServiceTestSuite runs the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
