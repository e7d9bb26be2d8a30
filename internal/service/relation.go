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

// RelationService implements the add/remove toggles shared by favorites,
// shopping cart entries and follows. ADD is strict: a duplicate pair is a
// conflict. REMOVE is idempotent: removing an absent mark succeeds.
type RelationService struct {
	repo       repository.RelationRepositoryInterface
	recipeRepo repository.RecipeRepositoryInterface
	userSvc    UserServiceInterface
}

// Ensure RelationService implements RelationServiceInterface
var _ RelationServiceInterface = (*RelationService)(nil)

// NewRelationService creates a new RelationService
func NewRelationService(
	repo repository.RelationRepositoryInterface,
	recipeRepo repository.RecipeRepositoryInterface,
	userSvc UserServiceInterface,
) *RelationService {
	return &RelationService{
		repo:       repo,
		recipeRepo: recipeRepo,
		userSvc:    userSvc,
	}
}

// AddFavorite marks the recipe as favorited by the user
func (s *RelationService) AddFavorite(userID, recipeID uuid.UUID) (*RecipePreviewResponse, error) {
	return s.addRecipeRelation(models.RelationFavorite, userID, recipeID)
}

// RemoveFavorite clears the mark; absence is not an error
func (s *RelationService) RemoveFavorite(userID, recipeID uuid.UUID) error {
	return s.removeRelation(models.RelationFavorite, userID, recipeID)
}

// AddToShoppingCart queues the recipe for the user's shopping list
func (s *RelationService) AddToShoppingCart(userID, recipeID uuid.UUID) (*RecipePreviewResponse, error) {
	return s.addRecipeRelation(models.RelationShoppingCart, userID, recipeID)
}

// RemoveFromShoppingCart clears the entry; absence is not an error
func (s *RelationService) RemoveFromShoppingCart(userID, recipeID uuid.UUID) error {
	return s.removeRelation(models.RelationShoppingCart, userID, recipeID)
}

// Subscribe follows an author. Following yourself is rejected before the
// uniqueness check.
func (s *RelationService) Subscribe(subscriberID, authorID uuid.UUID) (*SubscriptionResponse, error) {
	if subscriberID == authorID {
		return nil, apperrors.ErrSelfFollow
	}
	// Resolve the author first so a missing user surfaces as not-found
	author, err := s.userSvc.GetByID(authorID, nil)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Add(models.RelationFollow, subscriberID, authorID); err != nil {
		return nil, err
	}

	subs, err := s.userSvc.Subscriptions(subscriberID)
	if err != nil {
		return nil, err
	}
	for i := range subs {
		if subs[i].ID == author.ID {
			return &subs[i], nil
		}
	}
	return nil, fmt.Errorf("subscription for author %s not found after create", authorID)
}

// Unsubscribe stops following; absence is not an error
func (s *RelationService) Unsubscribe(subscriberID, authorID uuid.UUID) error {
	return s.removeRelation(models.RelationFollow, subscriberID, authorID)
}

func (s *RelationService) addRecipeRelation(kind models.RelationKind, userID, recipeID uuid.UUID) (*RecipePreviewResponse, error) {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	if err := s.repo.Add(kind, userID, recipeID); err != nil {
		return nil, err
	}

	preview := toRecipePreview(recipe)
	return &preview, nil
}

func (s *RelationService) removeRelation(kind models.RelationKind, actorID, targetID uuid.UUID) error {
	if err := s.repo.Remove(kind, actorID, targetID); err != nil {
		return &apperrors.StorageError{Op: "remove " + string(kind), Err: err}
	}
	return nil
}
