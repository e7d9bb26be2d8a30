package service_test

import (
	"errors"
	"testing"

	apperrors "foodshare-backend/internal/errors"
	"foodshare-backend/internal/mocks"
	"foodshare-backend/internal/repository"
	"foodshare-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ShoppingListServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockRecipeRepo      *mocks.MockRecipeRepositoryInterface
	shoppingListService *service.ShoppingListService
}

func (suite *ShoppingListServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRecipeRepo = mocks.NewMockRecipeRepositoryInterface(suite.ctrl)
	suite.shoppingListService = service.NewShoppingListService(suite.mockRecipeRepo)
}

func (suite *ShoppingListServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ShoppingListServiceTestSuite) TestRender_Success() {
	userID := uuid.New()
	rows := []repository.ShoppingListRow{
		{Name: "flour", MeasurementUnit: "grams", Total: 300},
		{Name: "sugar", MeasurementUnit: "grams", Total: 50},
	}
	suite.mockRecipeRepo.EXPECT().ShoppingListRows(userID).Return(rows, nil)

	text, err := suite.shoppingListService.Render(userID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(),
		"Shopping list: \n1. Flour (grams) - 300;\n2. Sugar (grams) - 50;\n",
		text)
}

func (suite *ShoppingListServiceTestSuite) TestRender_EmptyCart_HeaderOnly() {
	userID := uuid.New()
	suite.mockRecipeRepo.EXPECT().ShoppingListRows(userID).Return(nil, nil)

	text, err := suite.shoppingListService.Render(userID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Shopping list: \n", text)
}

func (suite *ShoppingListServiceTestSuite) TestRender_CapitalizesMixedCaseNames() {
	userID := uuid.New()
	rows := []repository.ShoppingListRow{
		{Name: "BROWN Sugar", MeasurementUnit: "grams", Total: 20},
	}
	suite.mockRecipeRepo.EXPECT().ShoppingListRows(userID).Return(rows, nil)

	text, err := suite.shoppingListService.Render(userID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Shopping list: \n1. Brown sugar (grams) - 20;\n", text)
}

func (suite *ShoppingListServiceTestSuite) TestRender_RepositoryError() {
	userID := uuid.New()
	suite.mockRecipeRepo.EXPECT().ShoppingListRows(userID).Return(nil, errors.New("connection refused"))

	text, err := suite.shoppingListService.Render(userID)

	assert.Error(suite.T(), err)
	assert.Empty(suite.T(), text)

	var storageErr *apperrors.StorageError
	assert.ErrorAs(suite.T(), err, &storageErr)
}

func TestShoppingListServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShoppingListServiceTestSuite))
}
