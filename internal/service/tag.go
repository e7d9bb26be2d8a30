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

// TagService provides tag catalog reads
type TagService struct {
	repo repository.TagRepositoryInterface
}

// Ensure TagService implements TagServiceInterface
var _ TagServiceInterface = (*TagService)(nil)

// NewTagService creates a new TagService
func NewTagService(repo repository.TagRepositoryInterface) *TagService {
	return &TagService{repo: repo}
}

// TagResponse represents a single tag in API responses
type TagResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
	Slug  string    `json:"slug"`
}

// GetAll retrieves the full tag set
func (s *TagService) GetAll() ([]TagResponse, error) {
	tags, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}

	responses := make([]TagResponse, len(tags))
	for i, t := range tags {
		responses[i] = toTagResponse(&t)
	}
	return responses, nil
}

// GetByID retrieves a single tag
func (s *TagService) GetByID(id uuid.UUID) (*TagResponse, error) {
	tag, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	resp := toTagResponse(tag)
	return &resp, nil
}

func toTagResponse(tag *models.Tag) TagResponse {
	return TagResponse{
		ID:    tag.ID,
		Name:  tag.Name,
		Color: tag.Color,
		Slug:  tag.Slug,
	}
}
