package testutils

import (
	"time"

	"foodshare-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	// Derive a unique username/email from the UUID to avoid conflicts
	suffix := id.String()[:8]

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:     "user-" + suffix,
		Email:        "user-" + suffix + "@test.com",
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
	}
}

// WithUsername sets a custom username for the user
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	user.Email = username + "@test.com"
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// TagFactory provides methods to create test Tag data
type TagFactory struct{}

// NewTagFactory creates a new TagFactory
func NewTagFactory() *TagFactory {
	return &TagFactory{}
}

// Create creates a test Tag with default values
func (f *TagFactory) Create() *models.Tag {
	id := uuid.New()
	suffix := id.String()[:8]

	return &models.Tag{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:  "Tag " + suffix,
		Color: "#49B64E",
		Slug:  "tag-" + suffix,
	}
}

// WithSlug sets a custom slug for the tag
func (f *TagFactory) WithSlug(slug string) *models.Tag {
	tag := f.Create()
	tag.Name = slug
	tag.Slug = slug
	return tag
}

// IngredientFactory provides methods to create test Ingredient data
type IngredientFactory struct{}

// NewIngredientFactory creates a new IngredientFactory
func NewIngredientFactory() *IngredientFactory {
	return &IngredientFactory{}
}

// Create creates a test Ingredient with default values
func (f *IngredientFactory) Create() *models.Ingredient {
	id := uuid.New()
	suffix := id.String()[:8]

	return &models.Ingredient{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:            "ingredient-" + suffix,
		MeasurementUnit: "grams",
	}
}

// WithName sets a custom name and unit for the ingredient
func (f *IngredientFactory) WithName(name, unit string) *models.Ingredient {
	ingredient := f.Create()
	ingredient.Name = name
	ingredient.MeasurementUnit = unit
	return ingredient
}

// RecipeFactory provides methods to create test Recipe data
type RecipeFactory struct{}

// NewRecipeFactory creates a new RecipeFactory
func NewRecipeFactory() *RecipeFactory {
	return &RecipeFactory{}
}

// Create creates a test Recipe with default values. AuthorID must be set to
// an existing user before saving.
func (f *RecipeFactory) Create() *models.Recipe {
	id := uuid.New()
	suffix := id.String()[:8]

	return &models.Recipe{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Recipe " + suffix,
		Text:        "A test recipe description",
		CookingTime: 30,
		Image:       "recipes/images/" + suffix + ".png",
	}
}

// WithAuthor sets the author ID for the recipe
func (f *RecipeFactory) WithAuthor(authorID uuid.UUID) *models.Recipe {
	recipe := f.Create()
	recipe.AuthorID = authorID
	return recipe
}

// WithName sets a custom name for the recipe
func (f *RecipeFactory) WithName(name string) *models.Recipe {
	recipe := f.Create()
	recipe.Name = name
	return recipe
}

// FactorySet provides access to all factories
type FactorySet struct {
	User       *UserFactory
	Tag        *TagFactory
	Ingredient *IngredientFactory
	Recipe     *RecipeFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:       NewUserFactory(),
		Tag:        NewTagFactory(),
		Ingredient: NewIngredientFactory(),
		Recipe:     NewRecipeFactory(),
	}
}
