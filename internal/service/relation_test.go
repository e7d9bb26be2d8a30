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

type RelationServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockRelationRepo *mocks.MockRelationRepositoryInterface
	mockRecipeRepo   *mocks.MockRecipeRepositoryInterface
	mockUserService  *mocks.MockUserServiceInterface
	relationService  *service.RelationService
}

func (suite *RelationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRelationRepo = mocks.NewMockRelationRepositoryInterface(suite.ctrl)
	suite.mockRecipeRepo = mocks.NewMockRecipeRepositoryInterface(suite.ctrl)
	suite.mockUserService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.relationService = service.NewRelationService(
		suite.mockRelationRepo,
		suite.mockRecipeRepo,
		suite.mockUserService,
	)
}

func (suite *RelationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RelationServiceTestSuite) TestAddFavorite_ReturnsPreview() {
	userID := uuid.New()
	recipeID := uuid.New()
	recipe := &models.Recipe{
		BaseModel:   models.BaseModel{ID: recipeID},
		Name:        "Pancakes",
		Image:       "recipes/images/p.png",
		CookingTime: 20,
	}

	suite.mockRecipeRepo.EXPECT().GetByID(recipeID).Return(recipe, nil)
	suite.mockRelationRepo.EXPECT().Add(models.RelationFavorite, userID, recipeID).Return(nil)

	preview, err := suite.relationService.AddFavorite(userID, recipeID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), recipeID, preview.ID)
	assert.Equal(suite.T(), "Pancakes", preview.Name)
	assert.Equal(suite.T(), 20, preview.CookingTime)
}

func (suite *RelationServiceTestSuite) TestAddFavorite_RecipeMissing() {
	userID := uuid.New()
	recipeID := uuid.New()

	suite.mockRecipeRepo.EXPECT().GetByID(recipeID).Return(nil, gorm.ErrRecordNotFound)

	preview, err := suite.relationService.AddFavorite(userID, recipeID)

	assert.Nil(suite.T(), preview)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRecipeNotFound)
}

func (suite *RelationServiceTestSuite) TestAddFavorite_Duplicate() {
	userID := uuid.New()
	recipeID := uuid.New()
	recipe := &models.Recipe{BaseModel: models.BaseModel{ID: recipeID}, Name: "Pancakes"}

	suite.mockRecipeRepo.EXPECT().GetByID(recipeID).Return(recipe, nil)
	suite.mockRelationRepo.EXPECT().Add(models.RelationFavorite, userID, recipeID).
		Return(apperrors.ErrAlreadyFavorited)

	preview, err := suite.relationService.AddFavorite(userID, recipeID)

	assert.Nil(suite.T(), preview)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAlreadyFavorited)
}

func (suite *RelationServiceTestSuite) TestAddToShoppingCart_Duplicate() {
	userID := uuid.New()
	recipeID := uuid.New()
	recipe := &models.Recipe{BaseModel: models.BaseModel{ID: recipeID}, Name: "Stew"}

	suite.mockRecipeRepo.EXPECT().GetByID(recipeID).Return(recipe, nil)
	suite.mockRelationRepo.EXPECT().Add(models.RelationShoppingCart, userID, recipeID).
		Return(apperrors.ErrAlreadyInShoppingCart)

	preview, err := suite.relationService.AddToShoppingCart(userID, recipeID)

	assert.Nil(suite.T(), preview)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAlreadyInShoppingCart)
}

func (suite *RelationServiceTestSuite) TestRemoveFavorite_Idempotent() {
	userID := uuid.New()
	recipeID := uuid.New()

	// Remove never reports absence, so neither does the service
	suite.mockRelationRepo.EXPECT().Remove(models.RelationFavorite, userID, recipeID).Return(nil)

	assert.NoError(suite.T(), suite.relationService.RemoveFavorite(userID, recipeID))
}

func (suite *RelationServiceTestSuite) TestSubscribe_Self() {
	userID := uuid.New()

	resp, err := suite.relationService.Subscribe(userID, userID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSelfFollow)
}

func (suite *RelationServiceTestSuite) TestSubscribe_AuthorMissing() {
	subscriberID := uuid.New()
	authorID := uuid.New()

	suite.mockUserService.EXPECT().GetByID(authorID, nil).Return(nil, apperrors.ErrUserNotFound)

	resp, err := suite.relationService.Subscribe(subscriberID, authorID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func (suite *RelationServiceTestSuite) TestSubscribe_Success() {
	subscriberID := uuid.New()
	authorID := uuid.New()

	suite.mockUserService.EXPECT().GetByID(authorID, nil).
		Return(&service.UserResponse{ID: authorID, Username: "alice"}, nil)
	suite.mockRelationRepo.EXPECT().Add(models.RelationFollow, subscriberID, authorID).Return(nil)
	suite.mockUserService.EXPECT().Subscriptions(subscriberID).Return([]service.SubscriptionResponse{
		{ID: uuid.New(), Username: "bob"},
		{ID: authorID, Username: "alice", IsSubscribed: true, RecipesCount: 2},
	}, nil)

	resp, err := suite.relationService.Subscribe(subscriberID, authorID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), authorID, resp.ID)
	assert.True(suite.T(), resp.IsSubscribed)
	assert.Equal(suite.T(), int64(2), resp.RecipesCount)
}

func (suite *RelationServiceTestSuite) TestSubscribe_Duplicate() {
	subscriberID := uuid.New()
	authorID := uuid.New()

	suite.mockUserService.EXPECT().GetByID(authorID, nil).
		Return(&service.UserResponse{ID: authorID}, nil)
	suite.mockRelationRepo.EXPECT().Add(models.RelationFollow, subscriberID, authorID).
		Return(apperrors.ErrAlreadySubscribed)

	resp, err := suite.relationService.Subscribe(subscriberID, authorID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAlreadySubscribed)
}

func (suite *RelationServiceTestSuite) TestUnsubscribe_Idempotent() {
	subscriberID := uuid.New()
	authorID := uuid.New()

	suite.mockRelationRepo.EXPECT().Remove(models.RelationFollow, subscriberID, authorID).Return(nil)

	assert.NoError(suite.T(), suite.relationService.Unsubscribe(subscriberID, authorID))
}

func TestRelationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RelationServiceTestSuite))
}
