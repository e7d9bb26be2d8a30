package repository

import (
	"foodshare-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// TagRepositoryInterface defines the interface for tag repository operations
type TagRepositoryInterface interface {
	Create(tag *models.Tag) error
	GetByID(id uuid.UUID) (*models.Tag, error)
	GetBySlug(slug string) (*models.Tag, error)
	GetByIDs(ids []uuid.UUID) ([]models.Tag, error)
	GetAll() ([]models.Tag, error)
}

// IngredientRepositoryInterface defines the interface for ingredient catalog operations
type IngredientRepositoryInterface interface {
	Create(ingredient *models.Ingredient) error
	GetByID(id uuid.UUID) (*models.Ingredient, error)
	GetByIDs(ids []uuid.UUID) ([]models.Ingredient, error)
	GetAll(limit, offset int) ([]models.Ingredient, int64, error)
	SearchByName(prefix string, limit, offset int) ([]models.Ingredient, int64, error)
}

// RecipeFilter narrows recipe listings. Nil / empty fields are skipped.
type RecipeFilter struct {
	TagSlugs    []string
	AuthorID    *uuid.UUID
	FavoritedBy *uuid.UUID
	InCartOf    *uuid.UUID
	Limit       int
	Offset      int
}

// ShoppingListRow is one aggregated line of a user's shopping list:
// a distinct (ingredient name, unit) pair with its summed amount.
type ShoppingListRow struct {
	Name            string
	MeasurementUnit string
	Total           int
}

// RecipeRepositoryInterface defines the interface for recipe aggregate operations
type RecipeRepositoryInterface interface {
	Create(recipe *models.Recipe) error
	GetByID(id uuid.UUID) (*models.Recipe, error)
	GetByAuthor(authorID uuid.UUID, limit int) ([]models.Recipe, error)
	CountByAuthor(authorID uuid.UUID) (int64, error)
	List(filter RecipeFilter) ([]models.Recipe, int64, error)
	Update(recipe *models.Recipe, tags []models.Tag, lines []models.RecipeIngredient) error
	Delete(id uuid.UUID) error
	ShoppingListRows(userID uuid.UUID) ([]ShoppingListRow, error)
}

// RelationRepositoryInterface defines the interface for the uniquely-keyed
// user relations (favorite, shopping cart, follow)
type RelationRepositoryInterface interface {
	Add(kind models.RelationKind, actorID, targetID uuid.UUID) error
	Remove(kind models.RelationKind, actorID, targetID uuid.UUID) error
	Exists(kind models.RelationKind, actorID, targetID uuid.UUID) (bool, error)
	AuthorsFollowedBy(subscriberID uuid.UUID) ([]models.User, error)
}
