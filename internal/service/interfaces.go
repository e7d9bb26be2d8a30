package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TagServiceInterface defines tag catalog reads
type TagServiceInterface interface {
	GetAll() ([]TagResponse, error)
	GetByID(id uuid.UUID) (*TagResponse, error)
}

// IngredientServiceInterface defines ingredient catalog reads
type IngredientServiceInterface interface {
	GetAll(search string, page, pageSize int) (*IngredientListResponse, error)
	GetByID(id uuid.UUID) (*IngredientResponse, error)
}

// UserServiceInterface defines user profile reads and subscription listings
type UserServiceInterface interface {
	GetByID(id uuid.UUID, requesterID *uuid.UUID) (*UserResponse, error)
	GetAll(page, pageSize int, requesterID *uuid.UUID) (*UserListResponse, error)
	Subscriptions(subscriberID uuid.UUID) ([]SubscriptionResponse, error)
}

// RecipeServiceInterface defines the recipe composition writer and the
// aggregate read path
type RecipeServiceInterface interface {
	Create(authorID uuid.UUID, req *CreateRecipeRequest) (*RecipeResponse, error)
	Update(recipeID, requesterID uuid.UUID, req *UpdateRecipeRequest) (*RecipeResponse, error)
	GetByID(recipeID uuid.UUID, requesterID *uuid.UUID) (*RecipeResponse, error)
	List(query *ListRecipesQuery, requesterID *uuid.UUID) (*RecipeListResponse, error)
	Delete(recipeID, requesterID uuid.UUID) error
}

// RelationServiceInterface defines the add/remove toggles on the
// uniquely-keyed relations
type RelationServiceInterface interface {
	AddFavorite(userID, recipeID uuid.UUID) (*RecipePreviewResponse, error)
	RemoveFavorite(userID, recipeID uuid.UUID) error
	AddToShoppingCart(userID, recipeID uuid.UUID) (*RecipePreviewResponse, error)
	RemoveFromShoppingCart(userID, recipeID uuid.UUID) error
	Subscribe(subscriberID, authorID uuid.UUID) (*SubscriptionResponse, error)
	Unsubscribe(subscriberID, authorID uuid.UUID) error
}

// ShoppingListServiceInterface builds the downloadable shopping list
type ShoppingListServiceInterface interface {
	Render(userID uuid.UUID) (string, error)
}
