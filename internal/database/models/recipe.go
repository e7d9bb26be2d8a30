package models

import (
	"github.com/google/uuid"
)

// Recipe owns its ingredient lines and tag links as a composition: both
// child sets are replaced wholesale on update and removed with the recipe.
type Recipe struct {
	BaseModel
	Name        string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Text        string    `json:"text" gorm:"type:text;not null" validate:"required"`
	CookingTime int       `json:"cooking_time" gorm:"not null" validate:"required,min=1"`
	Image       string    `json:"image" gorm:"size:255"`
	AuthorID    uuid.UUID `json:"author_id" gorm:"type:uuid;not null;index"`

	Author      *User              `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Tags        []Tag              `json:"-" gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE"`
	Ingredients []RecipeIngredient `json:"-" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Recipe
func (Recipe) TableName() string {
	return "recipes"
}

// RecipeIngredient is one (ingredient, amount) line of a recipe. Lines are
// created and destroyed only as a batch alongside their recipe's write.
type RecipeIngredient struct {
	BaseModel
	RecipeID     uuid.UUID `json:"recipe_id" gorm:"type:uuid;uniqueIndex:idx_recipe_ingredient;not null"`
	IngredientID uuid.UUID `json:"ingredient_id" gorm:"type:uuid;uniqueIndex:idx_recipe_ingredient;not null"`
	Amount       int       `json:"amount" gorm:"not null" validate:"required,min=1"`

	Ingredient *Ingredient `json:"-" gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for RecipeIngredient
func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}
