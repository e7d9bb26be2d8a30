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

// UserService provides user profile reads and subscription listings
type UserService struct {
	repo         repository.UserRepositoryInterface
	recipeRepo   repository.RecipeRepositoryInterface
	relationRepo repository.RelationRepositoryInterface
}

// Ensure UserService implements UserServiceInterface
var _ UserServiceInterface = (*UserService)(nil)

// NewUserService creates a new UserService
func NewUserService(
	repo repository.UserRepositoryInterface,
	recipeRepo repository.RecipeRepositoryInterface,
	relationRepo repository.RelationRepositoryInterface,
) *UserService {
	return &UserService{
		repo:         repo,
		recipeRepo:   recipeRepo,
		relationRepo: relationRepo,
	}
}

// UserResponse represents a user profile in API responses. IsSubscribed is
// computed against the requesting user.
type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	IsSubscribed bool      `json:"is_subscribed"`
}

// UserListResponse represents a paginated user listing
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// SubscriptionResponse is one followed author with a preview of their recipes
type SubscriptionResponse struct {
	ID           uuid.UUID               `json:"id"`
	Email        string                  `json:"email"`
	Username     string                  `json:"username"`
	FirstName    string                  `json:"first_name"`
	LastName     string                  `json:"last_name"`
	IsSubscribed bool                    `json:"is_subscribed"`
	Recipes      []RecipePreviewResponse `json:"recipes"`
	RecipesCount int64                   `json:"recipes_count"`
}

// GetByID retrieves a user profile with the subscription flag scoped to the requester
func (s *UserService) GetByID(id uuid.UUID, requesterID *uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	resp := toUserResponse(user)
	if requesterID != nil && *requesterID != user.ID {
		subscribed, err := s.relationRepo.Exists(models.RelationFollow, *requesterID, user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check subscription: %w", err)
		}
		resp.IsSubscribed = subscribed
	}
	return &resp, nil
}

// GetAll retrieves user profiles with pagination
func (s *UserService) GetAll(page, pageSize int, requesterID *uuid.UUID) (*UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	users, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i, u := range users {
		responses[i] = toUserResponse(&u)
		if requesterID != nil && *requesterID != u.ID {
			subscribed, err := s.relationRepo.Exists(models.RelationFollow, *requesterID, u.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to check subscription: %w", err)
			}
			responses[i].IsSubscribed = subscribed
		}
	}

	return &UserListResponse{
		Users:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Subscriptions lists every author the subscriber follows, each with a
// preview of their recipes and the total count
func (s *UserService) Subscriptions(subscriberID uuid.UUID) ([]SubscriptionResponse, error) {
	authors, err := s.relationRepo.AuthorsFollowedBy(subscriberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscriptions: %w", err)
	}

	responses := make([]SubscriptionResponse, len(authors))
	for i, author := range authors {
		resp, err := s.subscriptionEntry(&author)
		if err != nil {
			return nil, err
		}
		responses[i] = *resp
	}
	return responses, nil
}

func (s *UserService) subscriptionEntry(author *models.User) (*SubscriptionResponse, error) {
	recipes, err := s.recipeRepo.GetByAuthor(author.ID, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to get author recipes: %w", err)
	}
	count, err := s.recipeRepo.CountByAuthor(author.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count author recipes: %w", err)
	}

	previews := make([]RecipePreviewResponse, len(recipes))
	for i := range recipes {
		previews[i] = toRecipePreview(&recipes[i])
	}

	return &SubscriptionResponse{
		ID:           author.ID,
		Email:        author.Email,
		Username:     author.Username,
		FirstName:    author.FirstName,
		LastName:     author.LastName,
		IsSubscribed: true,
		Recipes:      previews,
		RecipesCount: count,
	}, nil
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}
