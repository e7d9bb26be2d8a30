package repository

import (
	"testing"

	"foodshare-backend/internal/database/models"
	apperrors "foodshare-backend/internal/errors"
	"foodshare-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// RelationRepositoryTestSuite tests the RelationRepository
type RelationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *RelationRepository
	recipeRepo    *RecipeRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *RelationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewRelationRepository(suite.baseTestSuite.DB)
	suite.recipeRepo = NewRecipeRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *RelationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *RelationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *RelationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *RelationRepositoryTestSuite) createUser() *models.User {
	user := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)
	return user
}

func (suite *RelationRepositoryTestSuite) createRecipe(author *models.User) *models.Recipe {
	recipe := suite.factories.Recipe.WithAuthor(author.ID)
	suite.NoError(suite.recipeRepo.Create(recipe))
	return recipe
}

// TestAddAndExists tests inserting each relation kind
func (suite *RelationRepositoryTestSuite) TestAddAndExists() {
	user := suite.createUser()
	author := suite.createUser()
	recipe := suite.createRecipe(author)

	suite.NoError(suite.repo.Add(models.RelationFavorite, user.ID, recipe.ID))
	suite.NoError(suite.repo.Add(models.RelationShoppingCart, user.ID, recipe.ID))
	suite.NoError(suite.repo.Add(models.RelationFollow, user.ID, author.ID))

	for _, kind := range []models.RelationKind{models.RelationFavorite, models.RelationShoppingCart} {
		exists, err := suite.repo.Exists(kind, user.ID, recipe.ID)
		suite.NoError(err)
		suite.True(exists)
	}

	exists, err := suite.repo.Exists(models.RelationFollow, user.ID, author.ID)
	suite.NoError(err)
	suite.True(exists)

	// The inverse follow direction was never added
	exists, err = suite.repo.Exists(models.RelationFollow, author.ID, user.ID)
	suite.NoError(err)
	suite.False(exists)
}

// TestAddDuplicateFavorite tests that the unique index surfaces a second
// add as the kind's conflict error
func (suite *RelationRepositoryTestSuite) TestAddDuplicateFavorite() {
	user := suite.createUser()
	recipe := suite.createRecipe(suite.createUser())

	suite.NoError(suite.repo.Add(models.RelationFavorite, user.ID, recipe.ID))

	err := suite.repo.Add(models.RelationFavorite, user.ID, recipe.ID)
	suite.ErrorIs(err, apperrors.ErrAlreadyFavorited)
}

// TestAddDuplicateCart tests the conflict error for cart entries
func (suite *RelationRepositoryTestSuite) TestAddDuplicateCart() {
	user := suite.createUser()
	recipe := suite.createRecipe(suite.createUser())

	suite.NoError(suite.repo.Add(models.RelationShoppingCart, user.ID, recipe.ID))

	err := suite.repo.Add(models.RelationShoppingCart, user.ID, recipe.ID)
	suite.ErrorIs(err, apperrors.ErrAlreadyInShoppingCart)
}

// TestAddDuplicateFollow tests the conflict error for follows
func (suite *RelationRepositoryTestSuite) TestAddDuplicateFollow() {
	subscriber := suite.createUser()
	author := suite.createUser()

	suite.NoError(suite.repo.Add(models.RelationFollow, subscriber.ID, author.ID))

	err := suite.repo.Add(models.RelationFollow, subscriber.ID, author.ID)
	suite.ErrorIs(err, apperrors.ErrAlreadySubscribed)
}

// TestRemoveIdempotent tests that removal succeeds whether or not the row exists
func (suite *RelationRepositoryTestSuite) TestRemoveIdempotent() {
	user := suite.createUser()
	recipe := suite.createRecipe(suite.createUser())

	suite.NoError(suite.repo.Add(models.RelationFavorite, user.ID, recipe.ID))
	suite.NoError(suite.repo.Remove(models.RelationFavorite, user.ID, recipe.ID))

	exists, err := suite.repo.Exists(models.RelationFavorite, user.ID, recipe.ID)
	suite.NoError(err)
	suite.False(exists)

	// A second removal of the same row is not an error
	suite.NoError(suite.repo.Remove(models.RelationFavorite, user.ID, recipe.ID))
}

// TestAddAfterRemove tests that a removed relation can be added again
func (suite *RelationRepositoryTestSuite) TestAddAfterRemove() {
	user := suite.createUser()
	recipe := suite.createRecipe(suite.createUser())

	suite.NoError(suite.repo.Add(models.RelationShoppingCart, user.ID, recipe.ID))
	suite.NoError(suite.repo.Remove(models.RelationShoppingCart, user.ID, recipe.ID))
	suite.NoError(suite.repo.Add(models.RelationShoppingCart, user.ID, recipe.ID))

	exists, err := suite.repo.Exists(models.RelationShoppingCart, user.ID, recipe.ID)
	suite.NoError(err)
	suite.True(exists)
}

// TestUnknownKind tests the guard against an unrecognized relation kind
func (suite *RelationRepositoryTestSuite) TestUnknownKind() {
	user := suite.createUser()
	other := suite.createUser()

	suite.Error(suite.repo.Add(models.RelationKind("bookmark"), user.ID, other.ID))
	suite.Error(suite.repo.Remove(models.RelationKind("bookmark"), user.ID, other.ID))
	_, err := suite.repo.Exists(models.RelationKind("bookmark"), user.ID, other.ID)
	suite.Error(err)
}

// TestAuthorsFollowedBy tests the follow listing and its username ordering
func (suite *RelationRepositoryTestSuite) TestAuthorsFollowedBy() {
	subscriber := suite.createUser()

	zoe := suite.factories.User.WithUsername("zoe")
	suite.NoError(suite.baseTestSuite.DB.Create(zoe).Error)
	adam := suite.factories.User.WithUsername("adam")
	suite.NoError(suite.baseTestSuite.DB.Create(adam).Error)

	suite.NoError(suite.repo.Add(models.RelationFollow, subscriber.ID, zoe.ID))
	suite.NoError(suite.repo.Add(models.RelationFollow, subscriber.ID, adam.ID))

	authors, err := suite.repo.AuthorsFollowedBy(subscriber.ID)
	suite.NoError(err)
	suite.Require().Len(authors, 2)
	suite.Equal("adam", authors[0].Username)
	suite.Equal("zoe", authors[1].Username)
}

// TestAuthorsFollowedByNone tests the empty result for a user with no follows
func (suite *RelationRepositoryTestSuite) TestAuthorsFollowedByNone() {
	subscriber := suite.createUser()

	authors, err := suite.repo.AuthorsFollowedBy(subscriber.ID)
	suite.NoError(err)
	suite.Empty(authors)
}

func TestRelationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RelationRepositoryTestSuite))
}
