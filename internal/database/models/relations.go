package models

import (
	"github.com/google/uuid"
)

// Favorite marks a recipe as favorited by a user. The composite unique
// index enforces one mark per (user, recipe) pair at the storage layer so
// concurrent adds cannot slip past an application-level check.
type Favorite struct {
	BaseModel
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;uniqueIndex:idx_favorite_user_recipe;not null"`
	RecipeID uuid.UUID `json:"recipe_id" gorm:"type:uuid;uniqueIndex:idx_favorite_user_recipe;not null"`

	User   *User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipe *Recipe `json:"-" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Favorite
func (Favorite) TableName() string {
	return "favorites"
}

// ShoppingCartItem marks a recipe as queued for the user's shopping list.
// Same uniqueness discipline as Favorite.
type ShoppingCartItem struct {
	BaseModel
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;uniqueIndex:idx_cart_user_recipe;not null"`
	RecipeID uuid.UUID `json:"recipe_id" gorm:"type:uuid;uniqueIndex:idx_cart_user_recipe;not null"`

	User   *User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipe *Recipe `json:"-" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ShoppingCartItem
func (ShoppingCartItem) TableName() string {
	return "shopping_cart_items"
}

// Follow is a subscriber-to-author relation between two users
type Follow struct {
	BaseModel
	SubscriberID uuid.UUID `json:"subscriber_id" gorm:"type:uuid;uniqueIndex:idx_follow_pair;not null"`
	AuthorID     uuid.UUID `json:"author_id" gorm:"type:uuid;uniqueIndex:idx_follow_pair;not null"`

	Subscriber *User `json:"-" gorm:"foreignKey:SubscriberID;constraint:OnDelete:CASCADE"`
	Author     *User `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Follow
func (Follow) TableName() string {
	return "follows"
}
