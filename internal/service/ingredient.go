package service

import (
	"errors"
	"fmt"

	"foodshare-backend/internal/database/models"
	apperrors "foodshare-backend/internal/errors"
	"foodshare-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IngredientService provides ingredient catalog reads
type IngredientService struct {
	repo repository.IngredientRepositoryInterface
}

// Ensure IngredientService implements IngredientServiceInterface
var _ IngredientServiceInterface = (*IngredientService)(nil)

// NewIngredientService creates a new IngredientService
func NewIngredientService(repo repository.IngredientRepositoryInterface) *IngredientService {
	return &IngredientService{repo: repo}
}

// IngredientResponse represents a catalog entry in API responses
type IngredientResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	MeasurementUnit string    `json:"measurement_unit"`
}

// IngredientListResponse represents a paginated catalog listing
type IngredientListResponse struct {
	Ingredients []IngredientResponse `json:"ingredients"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// GetAll retrieves catalog entries, optionally filtered by name prefix
func (s *IngredientService) GetAll(search string, page, pageSize int) (*IngredientListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 1000 {
		pageSize = 1000
	}
	offset := (page - 1) * pageSize

	var ingredients []models.Ingredient
	var total int64
	var err error
	if search != "" {
		ingredients, total, err = s.repo.SearchByName(search, pageSize, offset)
	} else {
		ingredients, total, err = s.repo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ingredients: %w", err)
	}

	responses := make([]IngredientResponse, len(ingredients))
	for i, ing := range ingredients {
		responses[i] = toIngredientResponse(&ing)
	}

	return &IngredientListResponse{
		Ingredients: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// GetByID retrieves a single catalog entry
func (s *IngredientService) GetByID(id uuid.UUID) (*IngredientResponse, error) {
	ingredient, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIngredientNotFound
		}
		return nil, fmt.Errorf("failed to get ingredient: %w", err)
	}
	resp := toIngredientResponse(ingredient)
	return &resp, nil
}

func toIngredientResponse(ingredient *models.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:              ingredient.ID,
		Name:            ingredient.Name,
		MeasurementUnit: ingredient.MeasurementUnit,
	}
}
