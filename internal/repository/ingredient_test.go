package repository

import (
	"testing"

	"foodshare-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// IngredientRepositoryTestSuite tests the IngredientRepository
type IngredientRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *IngredientRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *IngredientRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewIngredientRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *IngredientRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *IngredientRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *IngredientRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGet tests creating an ingredient and reading it back
func (suite *IngredientRepositoryTestSuite) TestCreateAndGet() {
	ingredient := suite.factories.Ingredient.WithName("flour", "grams")

	err := suite.repo.Create(ingredient)
	suite.NoError(err)
	suite.NotEqual(uuid.Nil, ingredient.ID)

	retrieved, err := suite.repo.GetByID(ingredient.ID)
	suite.NoError(err)
	suite.Equal("flour", retrieved.Name)
	suite.Equal("grams", retrieved.MeasurementUnit)
}

// TestCreateDuplicatePair tests the unique constraint on (name, unit)
func (suite *IngredientRepositoryTestSuite) TestCreateDuplicatePair() {
	suite.NoError(suite.repo.Create(suite.factories.Ingredient.WithName("sugar", "grams")))

	err := suite.repo.Create(suite.factories.Ingredient.WithName("sugar", "grams"))
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")

	// Same name under a different unit is a distinct catalog entry
	suite.NoError(suite.repo.Create(suite.factories.Ingredient.WithName("sugar", "tablespoons")))
}

// TestGetByIDNotFound tests retrieving a non-existent ingredient
func (suite *IngredientRepositoryTestSuite) TestGetByIDNotFound() {
	ingredient, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(ingredient)
}

// TestSearchByName tests the prefix search used by the catalog endpoint
func (suite *IngredientRepositoryTestSuite) TestSearchByName() {
	suite.NoError(suite.repo.Create(suite.factories.Ingredient.WithName("sugar", "grams")))
	suite.NoError(suite.repo.Create(suite.factories.Ingredient.WithName("sunflower oil", "ml")))
	suite.NoError(suite.repo.Create(suite.factories.Ingredient.WithName("flour", "grams")))

	ingredients, total, err := suite.repo.SearchByName("su", 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Require().Len(ingredients, 2)
	suite.Equal("sugar", ingredients[0].Name)
	suite.Equal("sunflower oil", ingredients[1].Name)

	// The match is case-insensitive
	ingredients, total, err = suite.repo.SearchByName("SU", 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(ingredients, 2)

	// The prefix anchors at the start of the name
	ingredients, total, err = suite.repo.SearchByName("gar", 10, 0)
	suite.NoError(err)
	suite.Equal(int64(0), total)
	suite.Empty(ingredients)
}

// TestGetAllPagination tests the paginated catalog listing
func (suite *IngredientRepositoryTestSuite) TestGetAllPagination() {
	suite.NoError(suite.repo.Create(suite.factories.Ingredient.WithName("carrot", "pieces")))
	suite.NoError(suite.repo.Create(suite.factories.Ingredient.WithName("apple", "pieces")))
	suite.NoError(suite.repo.Create(suite.factories.Ingredient.WithName("banana", "pieces")))

	ingredients, total, err := suite.repo.GetAll(2, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Require().Len(ingredients, 2)
	suite.Equal("apple", ingredients[0].Name)
	suite.Equal("banana", ingredients[1].Name)

	ingredients, _, err = suite.repo.GetAll(2, 2)
	suite.NoError(err)
	suite.Require().Len(ingredients, 1)
	suite.Equal("carrot", ingredients[0].Name)
}

func TestIngredientRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(IngredientRepositoryTestSuite))
}
