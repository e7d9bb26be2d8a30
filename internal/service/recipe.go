package service

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"foodshare-backend/internal/database/models"
	apperrors "foodshare-backend/internal/errors"
	"foodshare-backend/internal/logger"
	"foodshare-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeService handles the recipe composition write path and the
// aggregate read path
type RecipeService struct {
	repo           repository.RecipeRepositoryInterface
	tagRepo        repository.TagRepositoryInterface
	ingredientRepo repository.IngredientRepositoryInterface
	relationRepo   repository.RelationRepositoryInterface
	validator      *validator.Validate
	mediaRoot      string
}

// Ensure RecipeService implements RecipeServiceInterface
var _ RecipeServiceInterface = (*RecipeService)(nil)

// NewRecipeService creates a new RecipeService
func NewRecipeService(
	repo repository.RecipeRepositoryInterface,
	tagRepo repository.TagRepositoryInterface,
	ingredientRepo repository.IngredientRepositoryInterface,
	relationRepo repository.RelationRepositoryInterface,
	validator *validator.Validate,
	mediaRoot string,
) *RecipeService {
	return &RecipeService{
		repo:           repo,
		tagRepo:        tagRepo,
		ingredientRepo: ingredientRepo,
		relationRepo:   relationRepo,
		validator:      validator,
		mediaRoot:      mediaRoot,
	}
}

// IngredientLineRequest is one (ingredient, amount) entry of a recipe write
type IngredientLineRequest struct {
	ID     uuid.UUID `json:"id" validate:"required"`
	Amount int       `json:"amount"`
}

// CreateRecipeRequest represents the request to create a recipe
type CreateRecipeRequest struct {
	Name        string                  `json:"name" validate:"required,min=1,max=100"`
	Text        string                  `json:"text" validate:"required"`
	CookingTime int                     `json:"cooking_time"`
	TagIDs      []uuid.UUID             `json:"tags"`
	Ingredients []IngredientLineRequest `json:"ingredients"`
	Image       string                  `json:"image,omitempty"` // base64 data URI
}

// UpdateRecipeRequest represents the request to update a recipe. The tag
// set and ingredient lines fully replace the existing ones.
type UpdateRecipeRequest struct {
	Name        string                  `json:"name" validate:"required,min=1,max=100"`
	Text        string                  `json:"text" validate:"required"`
	CookingTime int                     `json:"cooking_time"`
	TagIDs      []uuid.UUID             `json:"tags"`
	Ingredients []IngredientLineRequest `json:"ingredients"`
	Image       string                  `json:"image,omitempty"`
}

// IngredientLineResponse is one assembled ingredient line
type IngredientLineResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	MeasurementUnit string    `json:"measurement_unit"`
	Amount          int       `json:"amount"`
}

// RecipeResponse is the fully assembled recipe aggregate. The two boolean
// flags are computed against the requesting user, not stored.
type RecipeResponse struct {
	ID               uuid.UUID                `json:"id"`
	Tags             []TagResponse            `json:"tags"`
	Author           UserResponse             `json:"author"`
	Ingredients      []IngredientLineResponse `json:"ingredients"`
	IsFavorited      bool                     `json:"is_favorited"`
	IsInShoppingCart bool                     `json:"is_in_shopping_cart"`
	Name             string                   `json:"name"`
	Image            string                   `json:"image,omitempty"`
	Text             string                   `json:"text"`
	CookingTime      int                      `json:"cooking_time"`
	CreatedAt        time.Time                `json:"created_at"`
}

// RecipePreviewResponse is the denormalized short form used by relation
// toggles and subscription listings
type RecipePreviewResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"image,omitempty"`
	CookingTime int       `json:"cooking_time"`
}

// ListRecipesQuery carries the listing filters
type ListRecipesQuery struct {
	TagSlugs         []string
	AuthorID         *uuid.UUID
	IsFavorited      bool
	IsInShoppingCart bool
	Page             int
	PageSize         int
}

// RecipeListResponse represents a paginated recipe listing
type RecipeListResponse struct {
	Recipes  []RecipeResponse `json:"recipes"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create validates the composition and persists the recipe with all of its
// children atomically
func (s *RecipeService) Create(authorID uuid.UUID, req *CreateRecipeRequest) (*RecipeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.CookingTime < 1 {
		return nil, apperrors.ErrInvalidCookingTime
	}

	lines, err := s.resolveLines(req.Ingredients)
	if err != nil {
		return nil, err
	}
	tags, err := s.resolveTags(req.TagIDs)
	if err != nil {
		return nil, err
	}

	imagePath, err := s.saveImage(req.Image)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		Name:        req.Name,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		Image:       imagePath,
		AuthorID:    authorID,
		Tags:        tags,
		Ingredients: lines,
	}
	log := logger.New().WithFields(map[string]interface{}{
		"recipe": recipe.Name,
		"author": authorID.String(),
	})
	if err := s.repo.Create(recipe); err != nil {
		log.Errorf("Failed to create recipe: %v", err)
		return nil, &apperrors.StorageError{Op: "create recipe", Err: err}
	}
	log.Infof("Recipe created")

	return s.GetByID(recipe.ID, &authorID)
}

// Update overwrites the recipe in place: same recipe id, both child sets
// fully replaced. Only the author may update.
func (s *RecipeService) Update(recipeID, requesterID uuid.UUID, req *UpdateRecipeRequest) (*RecipeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.CookingTime < 1 {
		return nil, apperrors.ErrInvalidCookingTime
	}

	existing, err := s.repo.GetByID(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	if existing.AuthorID != requesterID {
		return nil, apperrors.ErrNotRecipeOwner
	}

	lines, err := s.resolveLines(req.Ingredients)
	if err != nil {
		return nil, err
	}
	tags, err := s.resolveTags(req.TagIDs)
	if err != nil {
		return nil, err
	}

	imagePath := existing.Image
	if req.Image != "" {
		imagePath, err = s.saveImage(req.Image)
		if err != nil {
			return nil, err
		}
	}

	existing.Name = req.Name
	existing.Text = req.Text
	existing.CookingTime = req.CookingTime
	existing.Image = imagePath
	if err := s.repo.Update(existing, tags, lines); err != nil {
		return nil, &apperrors.StorageError{Op: "update recipe", Err: err}
	}
	logger.New().WithField("recipe", recipeID.String()).Infof("Recipe updated")

	return s.GetByID(recipeID, &requesterID)
}

// GetByID assembles the recipe aggregate, computing the per-requester flags
func (s *RecipeService) GetByID(recipeID uuid.UUID, requesterID *uuid.UUID) (*RecipeResponse, error) {
	recipe, err := s.repo.GetByID(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return s.assemble(recipe, requesterID)
}

// List retrieves recipes matching the query filters
func (s *RecipeService) List(query *ListRecipesQuery, requesterID *uuid.UUID) (*RecipeListResponse, error) {
	page := query.Page
	pageSize := query.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	filter := repository.RecipeFilter{
		TagSlugs: query.TagSlugs,
		AuthorID: query.AuthorID,
		Limit:    pageSize,
		Offset:   (page - 1) * pageSize,
	}
	// The "mine only" filters need an authenticated requester to mean anything
	if query.IsFavorited && requesterID != nil {
		filter.FavoritedBy = requesterID
	}
	if query.IsInShoppingCart && requesterID != nil {
		filter.InCartOf = requesterID
	}

	recipes, total, err := s.repo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	responses := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		resp, err := s.assemble(&recipes[i], requesterID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}

	return &RecipeListResponse{
		Recipes:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Delete removes the recipe; only the author may delete
func (s *RecipeService) Delete(recipeID, requesterID uuid.UUID) error {
	existing, err := s.repo.GetByID(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecipeNotFound
		}
		return fmt.Errorf("failed to get recipe: %w", err)
	}
	if existing.AuthorID != requesterID {
		return apperrors.ErrNotRecipeOwner
	}
	if err := s.repo.Delete(recipeID); err != nil {
		return &apperrors.StorageError{Op: "delete recipe", Err: err}
	}
	logger.New().WithField("recipe", recipeID.String()).Infof("Recipe deleted")
	return nil
}

// resolveLines validates the ingredient line set and resolves every
// ingredient id against the catalog
func (s *RecipeService) resolveLines(reqs []IngredientLineRequest) ([]models.RecipeIngredient, error) {
	if len(reqs) == 0 {
		return nil, apperrors.ErrNoIngredients
	}

	seen := make(map[uuid.UUID]bool, len(reqs))
	ids := make([]uuid.UUID, 0, len(reqs))
	for _, line := range reqs {
		if line.Amount < 1 {
			return nil, apperrors.ErrInvalidAmount
		}
		if seen[line.ID] {
			return nil, apperrors.ErrDuplicateIngredient
		}
		seen[line.ID] = true
		ids = append(ids, line.ID)
	}

	ingredients, err := s.ingredientRepo.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve ingredients: %w", err)
	}
	if len(ingredients) != len(ids) {
		return nil, apperrors.ErrIngredientNotFound
	}

	lines := make([]models.RecipeIngredient, len(reqs))
	for i, line := range reqs {
		lines[i] = models.RecipeIngredient{
			IngredientID: line.ID,
			Amount:       line.Amount,
		}
	}
	return lines, nil
}

// resolveTags resolves every tag id against the tag set
func (s *RecipeService) resolveTags(ids []uuid.UUID) ([]models.Tag, error) {
	tags, err := s.tagRepo.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tags: %w", err)
	}
	if len(tags) != len(ids) {
		return nil, apperrors.ErrTagNotFound
	}
	return tags, nil
}

// assemble converts the stored aggregate into its response form
func (s *RecipeService) assemble(recipe *models.Recipe, requesterID *uuid.UUID) (*RecipeResponse, error) {
	resp := &RecipeResponse{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       recipe.Image,
		Text:        recipe.Text,
		CookingTime: recipe.CookingTime,
		CreatedAt:   recipe.CreatedAt,
		Tags:        make([]TagResponse, len(recipe.Tags)),
		Ingredients: make([]IngredientLineResponse, len(recipe.Ingredients)),
	}
	for i, t := range recipe.Tags {
		resp.Tags[i] = toTagResponse(&t)
	}
	for i, line := range recipe.Ingredients {
		item := IngredientLineResponse{
			ID:     line.IngredientID,
			Amount: line.Amount,
		}
		if line.Ingredient != nil {
			item.Name = line.Ingredient.Name
			item.MeasurementUnit = line.Ingredient.MeasurementUnit
		}
		resp.Ingredients[i] = item
	}
	if recipe.Author != nil {
		resp.Author = toUserResponse(recipe.Author)
	}

	if requesterID != nil {
		favorited, err := s.relationRepo.Exists(models.RelationFavorite, *requesterID, recipe.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check favorite: %w", err)
		}
		inCart, err := s.relationRepo.Exists(models.RelationShoppingCart, *requesterID, recipe.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check shopping cart: %w", err)
		}
		resp.IsFavorited = favorited
		resp.IsInShoppingCart = inCart
	}

	return resp, nil
}

func toRecipePreview(recipe *models.Recipe) RecipePreviewResponse {
	return RecipePreviewResponse{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       recipe.Image,
		CookingTime: recipe.CookingTime,
	}
}

// saveImage decodes a base64 data URI and stores the file under the media
// root, returning the relative path. An empty input is an empty path.
func (s *RecipeService) saveImage(dataURI string) (string, error) {
	if dataURI == "" {
		return "", nil
	}

	payload := dataURI
	ext := "png"
	if strings.HasPrefix(dataURI, "data:") {
		header, rest, found := strings.Cut(dataURI, ",")
		if !found {
			return "", &apperrors.ValidationError{Field: "image", Message: "malformed data URI"}
		}
		payload = rest
		if strings.Contains(header, "image/jpeg") {
			ext = "jpg"
		}
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", &apperrors.ValidationError{Field: "image", Message: "invalid base64 image data"}
	}

	dir := filepath.Join(s.mediaRoot, "recipes", "images")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}
	name := fmt.Sprintf("%s.%s", uuid.New().String(), ext)
	if err := os.WriteFile(filepath.Join(dir, name), raw, 0o644); err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	return filepath.Join("recipes", "images", name), nil
}
