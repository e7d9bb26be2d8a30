package repository

import (
	"foodshare-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IngredientRepository handles database operations for the ingredient catalog
type IngredientRepository struct {
	db *gorm.DB
}

// Ensure IngredientRepository implements IngredientRepositoryInterface
var _ IngredientRepositoryInterface = (*IngredientRepository)(nil)

// NewIngredientRepository creates a new ingredient repository
func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

// Create inserts a new catalog entry
func (r *IngredientRepository) Create(ingredient *models.Ingredient) error {
	return r.db.Create(ingredient).Error
}

// GetByID retrieves an ingredient by its UUID
func (r *IngredientRepository) GetByID(id uuid.UUID) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := r.db.First(&ingredient, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// GetByIDs retrieves ingredients matching the given IDs
func (r *IngredientRepository) GetByIDs(ids []uuid.UUID) ([]models.Ingredient, error) {
	ingredients := make([]models.Ingredient, 0, len(ids))
	if len(ids) == 0 {
		return ingredients, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// GetAll retrieves catalog entries with pagination, ordered by name
func (r *IngredientRepository) GetAll(limit, offset int) ([]models.Ingredient, int64, error) {
	var ingredients []models.Ingredient
	var total int64

	if err := r.db.Model(&models.Ingredient{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Limit(limit).Offset(offset).
		Order("name ASC, measurement_unit ASC").
		Find(&ingredients).Error; err != nil {
		return nil, 0, err
	}

	return ingredients, total, nil
}

// SearchByName retrieves catalog entries whose name starts with the prefix
func (r *IngredientRepository) SearchByName(prefix string, limit, offset int) ([]models.Ingredient, int64, error) {
	var ingredients []models.Ingredient
	var total int64

	query := r.db.Model(&models.Ingredient{}).Where("name ILIKE ?", prefix+"%")

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Limit(limit).Offset(offset).
		Order("name ASC, measurement_unit ASC").
		Find(&ingredients).Error; err != nil {
		return nil, 0, err
	}

	return ingredients, total, nil
}
