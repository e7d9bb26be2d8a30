package service_test

import (
	"testing"

	"foodshare-backend/internal/database/models"
	apperrors "foodshare-backend/internal/errors"
	"foodshare-backend/internal/mocks"
	"foodshare-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type UserServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockUserRepo     *mocks.MockUserRepositoryInterface
	mockRecipeRepo   *mocks.MockRecipeRepositoryInterface
	mockRelationRepo *mocks.MockRelationRepositoryInterface
	userService      *service.UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockRecipeRepo = mocks.NewMockRecipeRepositoryInterface(suite.ctrl)
	suite.mockRelationRepo = mocks.NewMockRelationRepositoryInterface(suite.ctrl)
	suite.userService = service.NewUserService(
		suite.mockUserRepo,
		suite.mockRecipeRepo,
		suite.mockRelationRepo,
	)
}

func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func testUser(id uuid.UUID, username string) *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: id},
		Username:  username,
		Email:     username + "@test.com",
		FirstName: "Test",
		LastName:  "User",
	}
}

func (suite *UserServiceTestSuite) TestGetByID_WithRequesterFlag() {
	userID := uuid.New()
	requesterID := uuid.New()

	suite.mockUserRepo.EXPECT().GetByID(userID).Return(testUser(userID, "alice"), nil)
	suite.mockRelationRepo.EXPECT().Exists(models.RelationFollow, requesterID, userID).Return(true, nil)

	resp, err := suite.userService.GetByID(userID, &requesterID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "alice", resp.Username)
	assert.True(suite.T(), resp.IsSubscribed)
}

func (suite *UserServiceTestSuite) TestGetByID_SelfSkipsFlag() {
	userID := uuid.New()

	suite.mockUserRepo.EXPECT().GetByID(userID).Return(testUser(userID, "alice"), nil)

	resp, err := suite.userService.GetByID(userID, &userID)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), resp.IsSubscribed)
}

func (suite *UserServiceTestSuite) TestGetByID_NotFound() {
	userID := uuid.New()

	suite.mockUserRepo.EXPECT().GetByID(userID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.userService.GetByID(userID, nil)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func (suite *UserServiceTestSuite) TestGetAll_NormalizesPagination() {
	users := []models.User{*testUser(uuid.New(), "alice")}
	suite.mockUserRepo.EXPECT().GetAll(10, 0).Return(users, int64(1), nil)

	resp, err := suite.userService.GetAll(0, 0, nil)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Page)
	assert.Equal(suite.T(), 10, resp.PageSize)
	assert.Len(suite.T(), resp.Users, 1)
}

func (suite *UserServiceTestSuite) TestSubscriptions_BuildsEntries() {
	subscriberID := uuid.New()
	authorID := uuid.New()
	author := *testUser(authorID, "alice")

	recipes := []models.Recipe{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Pancakes", CookingTime: 20},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Waffles", CookingTime: 25},
	}

	suite.mockRelationRepo.EXPECT().AuthorsFollowedBy(subscriberID).Return([]models.User{author}, nil)
	suite.mockRecipeRepo.EXPECT().GetByAuthor(authorID, 3).Return(recipes, nil)
	suite.mockRecipeRepo.EXPECT().CountByAuthor(authorID).Return(int64(5), nil)

	subs, err := suite.userService.Subscriptions(subscriberID)

	assert.NoError(suite.T(), err)
	suite.Require().Len(subs, 1)
	assert.Equal(suite.T(), "alice", subs[0].Username)
	assert.True(suite.T(), subs[0].IsSubscribed)
	assert.Len(suite.T(), subs[0].Recipes, 2)
	assert.Equal(suite.T(), int64(5), subs[0].RecipesCount)
	assert.Equal(suite.T(), "Pancakes", subs[0].Recipes[0].Name)
}

func (suite *UserServiceTestSuite) TestSubscriptions_Empty() {
	subscriberID := uuid.New()

	suite.mockRelationRepo.EXPECT().AuthorsFollowedBy(subscriberID).Return([]models.User{}, nil)

	subs, err := suite.userService.Subscriptions(subscriberID)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), subs)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
