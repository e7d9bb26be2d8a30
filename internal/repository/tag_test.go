package repository

import (
	"testing"

	"foodshare-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TagRepositoryTestSuite tests the TagRepository
type TagRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TagRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TagRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTagRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TagRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TagRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TagRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGet tests creating a tag and reading it back by ID and slug
func (suite *TagRepositoryTestSuite) TestCreateAndGet() {
	tag := suite.factories.Tag.WithSlug("breakfast")

	err := suite.repo.Create(tag)
	suite.NoError(err)
	suite.NotEqual(uuid.Nil, tag.ID)

	byID, err := suite.repo.GetByID(tag.ID)
	suite.NoError(err)
	suite.Equal(tag.Slug, byID.Slug)

	bySlug, err := suite.repo.GetBySlug("breakfast")
	suite.NoError(err)
	suite.Equal(tag.ID, bySlug.ID)
}

// TestCreateDuplicateSlug tests the unique constraint on slug
func (suite *TagRepositoryTestSuite) TestCreateDuplicateSlug() {
	suite.NoError(suite.repo.Create(suite.factories.Tag.WithSlug("lunch")))

	err := suite.repo.Create(suite.factories.Tag.WithSlug("lunch"))
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByIDNotFound tests retrieving a non-existent tag
func (suite *TagRepositoryTestSuite) TestGetByIDNotFound() {
	tag, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(tag)
}

// TestGetByIDs tests the bulk lookup used when resolving recipe tag sets
func (suite *TagRepositoryTestSuite) TestGetByIDs() {
	lunch := suite.factories.Tag.WithSlug("lunch")
	dinner := suite.factories.Tag.WithSlug("dinner")
	suite.NoError(suite.repo.Create(lunch))
	suite.NoError(suite.repo.Create(dinner))

	tags, err := suite.repo.GetByIDs([]uuid.UUID{lunch.ID, dinner.ID})
	suite.NoError(err)
	suite.Len(tags, 2)

	// An unknown ID simply yields fewer rows
	tags, err = suite.repo.GetByIDs([]uuid.UUID{lunch.ID, uuid.New()})
	suite.NoError(err)
	suite.Len(tags, 1)

	// An empty ID set yields an empty result, not a full scan
	tags, err = suite.repo.GetByIDs(nil)
	suite.NoError(err)
	suite.Empty(tags)
}

// TestGetAll tests listing all tags ordered by name
func (suite *TagRepositoryTestSuite) TestGetAll() {
	suite.NoError(suite.repo.Create(suite.factories.Tag.WithSlug("zesty")))
	suite.NoError(suite.repo.Create(suite.factories.Tag.WithSlug("apple")))

	tags, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Require().Len(tags, 2)
	suite.Equal("apple", tags[0].Slug)
	suite.Equal("zesty", tags[1].Slug)
}

func TestTagRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TagRepositoryTestSuite))
}
