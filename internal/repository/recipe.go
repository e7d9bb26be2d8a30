package repository

import (
	"foodshare-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeRepository handles database operations for the recipe aggregate:
// the recipe row together with its tag links and ingredient lines
type RecipeRepository struct {
	db *gorm.DB
}

// Ensure RecipeRepository implements RecipeRepositoryInterface
var _ RecipeRepositoryInterface = (*RecipeRepository)(nil)

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create persists the recipe row and all of its children as one transaction.
// Either the recipe with every line and tag link exists afterwards, or
// nothing does.
func (r *RecipeRepository) Create(recipe *models.Recipe) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(recipe).Error
	})
}

// GetByID retrieves the fully assembled aggregate
func (r *RecipeRepository) GetByID(id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.db.
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetByAuthor retrieves an author's recipes, newest first. A limit of 0
// returns all of them.
func (r *RecipeRepository) GetByAuthor(authorID uuid.UUID, limit int) ([]models.Recipe, error) {
	var recipes []models.Recipe
	query := r.db.Where("author_id = ?", authorID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// CountByAuthor returns how many recipes an author has published
func (r *RecipeRepository) CountByAuthor(authorID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Recipe{}).Where("author_id = ?", authorID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// List retrieves recipes matching the filter, newest first
func (r *RecipeRepository) List(filter RecipeFilter) ([]models.Recipe, int64, error) {
	var recipes []models.Recipe
	var total int64

	query := r.db.Model(&models.Recipe{})

	if len(filter.TagSlugs) > 0 {
		tagged := r.db.Table("recipe_tags").
			Select("recipe_tags.recipe_id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", filter.TagSlugs)
		query = query.Where("recipes.id IN (?)", tagged)
	}
	if filter.AuthorID != nil {
		query = query.Where("recipes.author_id = ?", *filter.AuthorID)
	}
	if filter.FavoritedBy != nil {
		favorited := r.db.Table("favorites").
			Select("favorites.recipe_id").
			Where("favorites.user_id = ?", *filter.FavoritedBy)
		query = query.Where("recipes.id IN (?)", favorited)
	}
	if filter.InCartOf != nil {
		inCart := r.db.Table("shopping_cart_items").
			Select("shopping_cart_items.recipe_id").
			Where("shopping_cart_items.user_id = ?", *filter.InCartOf)
		query = query.Where("recipes.id IN (?)", inCart)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		Order("recipes.created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, total, nil
}

// Update overwrites the recipe's own columns and replaces both child sets
// inside a single transaction, so a concurrent reader never observes the
// recipe with its old lines removed and the new ones not yet inserted.
func (r *RecipeRepository) Update(recipe *models.Recipe, tags []models.Tag, lines []models.RecipeIngredient) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":         recipe.Name,
			"text":         recipe.Text,
			"cooking_time": recipe.CookingTime,
			"image":        recipe.Image,
		}
		if err := tx.Model(&models.Recipe{}).Where("id = ?", recipe.ID).Updates(updates).Error; err != nil {
			return err
		}

		// Full replace of ingredient lines: delete the old batch, insert the new one
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].RecipeID = recipe.ID
		}
		if len(lines) > 0 {
			if err := tx.Create(&lines).Error; err != nil {
				return err
			}
		}

		return tx.Model(recipe).Association("Tags").Replace(&tags)
	})
}

// Delete removes the recipe; lines, tag links, favorites and cart entries cascade
func (r *RecipeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Recipe{}, "id = ?", id).Error
}

// ShoppingListRows collapses every ingredient line of every recipe in the
// user's cart into one row per (name, unit) pair with the summed amount.
// Ordering by the grouping key keeps the rendered list stable across runs.
func (r *RecipeRepository) ShoppingListRows(userID uuid.UUID) ([]ShoppingListRow, error) {
	var rows []ShoppingListRow
	err := r.db.Table("recipe_ingredients").
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(recipe_ingredients.amount) AS total").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("JOIN shopping_cart_items ON shopping_cart_items.recipe_id = recipe_ingredients.recipe_id").
		Where("shopping_cart_items.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name ASC, ingredients.measurement_unit ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
