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

type CatalogServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockTagRepo        *mocks.MockTagRepositoryInterface
	mockIngredientRepo *mocks.MockIngredientRepositoryInterface
	tagService         *service.TagService
	ingredientService  *service.IngredientService
}

func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTagRepo = mocks.NewMockTagRepositoryInterface(suite.ctrl)
	suite.mockIngredientRepo = mocks.NewMockIngredientRepositoryInterface(suite.ctrl)
	suite.tagService = service.NewTagService(suite.mockTagRepo)
	suite.ingredientService = service.NewIngredientService(suite.mockIngredientRepo)
}

func (suite *CatalogServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CatalogServiceTestSuite) TestTagGetAll() {
	tags := []models.Tag{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Dinner", Color: "#8775D2", Slug: "dinner"},
	}
	suite.mockTagRepo.EXPECT().GetAll().Return(tags, nil)

	resp, err := suite.tagService.GetAll()

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), "breakfast", resp[0].Slug)
	assert.Equal(suite.T(), "#E26C2D", resp[0].Color)
}

func (suite *CatalogServiceTestSuite) TestTagGetByID_NotFound() {
	id := uuid.New()
	suite.mockTagRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.tagService.GetByID(id)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTagNotFound)
}

func (suite *CatalogServiceTestSuite) TestIngredientGetAll_DefaultPagination() {
	// page < 1 and pageSize out of range normalize to page=1, pageSize=1000
	ingredients := []models.Ingredient{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "flour", MeasurementUnit: "grams"},
	}
	suite.mockIngredientRepo.EXPECT().GetAll(1000, 0).Return(ingredients, int64(1), nil)

	resp, err := suite.ingredientService.GetAll("", 0, 0)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Page)
	assert.Equal(suite.T(), 1000, resp.PageSize)
	assert.Equal(suite.T(), int64(1), resp.Total)
	assert.Len(suite.T(), resp.Ingredients, 1)
	assert.Equal(suite.T(), "flour", resp.Ingredients[0].Name)
}

func (suite *CatalogServiceTestSuite) TestIngredientGetAll_SearchUsesPrefix() {
	suite.mockIngredientRepo.EXPECT().SearchByName("su", 20, 20).
		Return([]models.Ingredient{}, int64(0), nil)

	resp, err := suite.ingredientService.GetAll("su", 2, 20)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, resp.Page)
	assert.Empty(suite.T(), resp.Ingredients)
}

func (suite *CatalogServiceTestSuite) TestIngredientGetByID_NotFound() {
	id := uuid.New()
	suite.mockIngredientRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.ingredientService.GetByID(id)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrIngredientNotFound)
}

func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}
