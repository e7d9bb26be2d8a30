package repository

import (
	"errors"
	"fmt"

	"foodshare-backend/internal/database/models"
	apperrors "foodshare-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// RelationRepository handles the uniquely-keyed user relations. One
// implementation covers favorites, cart entries and follows, selected by
// models.RelationKind.
type RelationRepository struct {
	db *gorm.DB
}

// Ensure RelationRepository implements RelationRepositoryInterface
var _ RelationRepositoryInterface = (*RelationRepository)(nil)

// NewRelationRepository creates a new relation repository
func NewRelationRepository(db *gorm.DB) *RelationRepository {
	return &RelationRepository{db: db}
}

// Add inserts the relation row. The composite unique index is the arbiter
// of duplicates: a concurrent add that loses the race comes back as a
// unique violation and is mapped to the kind's AlreadyExists error.
func (r *RelationRepository) Add(kind models.RelationKind, actorID, targetID uuid.UUID) error {
	var err error
	switch kind {
	case models.RelationFavorite:
		err = r.db.Create(&models.Favorite{UserID: actorID, RecipeID: targetID}).Error
	case models.RelationShoppingCart:
		err = r.db.Create(&models.ShoppingCartItem{UserID: actorID, RecipeID: targetID}).Error
	case models.RelationFollow:
		err = r.db.Create(&models.Follow{SubscriberID: actorID, AuthorID: targetID}).Error
	default:
		return fmt.Errorf("unknown relation kind: %s", kind)
	}
	if isUniqueViolation(err) {
		return conflictError(kind)
	}
	return err
}

// Remove deletes the relation row if present. Removal is idempotent:
// deleting a relation that never existed succeeds.
func (r *RelationRepository) Remove(kind models.RelationKind, actorID, targetID uuid.UUID) error {
	switch kind {
	case models.RelationFavorite:
		return r.db.Where("user_id = ? AND recipe_id = ?", actorID, targetID).
			Delete(&models.Favorite{}).Error
	case models.RelationShoppingCart:
		return r.db.Where("user_id = ? AND recipe_id = ?", actorID, targetID).
			Delete(&models.ShoppingCartItem{}).Error
	case models.RelationFollow:
		return r.db.Where("subscriber_id = ? AND author_id = ?", actorID, targetID).
			Delete(&models.Follow{}).Error
	default:
		return fmt.Errorf("unknown relation kind: %s", kind)
	}
}

// Exists reports whether the relation row is present
func (r *RelationRepository) Exists(kind models.RelationKind, actorID, targetID uuid.UUID) (bool, error) {
	var count int64
	var err error
	switch kind {
	case models.RelationFavorite:
		err = r.db.Model(&models.Favorite{}).
			Where("user_id = ? AND recipe_id = ?", actorID, targetID).
			Count(&count).Error
	case models.RelationShoppingCart:
		err = r.db.Model(&models.ShoppingCartItem{}).
			Where("user_id = ? AND recipe_id = ?", actorID, targetID).
			Count(&count).Error
	case models.RelationFollow:
		err = r.db.Model(&models.Follow{}).
			Where("subscriber_id = ? AND author_id = ?", actorID, targetID).
			Count(&count).Error
	default:
		return false, fmt.Errorf("unknown relation kind: %s", kind)
	}
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AuthorsFollowedBy retrieves every author the subscriber follows, ordered
// by username for stable listings
func (r *RelationRepository) AuthorsFollowedBy(subscriberID uuid.UUID) ([]models.User, error) {
	var authors []models.User
	err := r.db.Model(&models.User{}).
		Joins("JOIN follows ON follows.author_id = users.id").
		Where("follows.subscriber_id = ?", subscriberID).
		Order("users.username ASC").
		Find(&authors).Error
	if err != nil {
		return nil, err
	}
	return authors, nil
}

// Postgres unique_violation
const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func conflictError(kind models.RelationKind) error {
	switch kind {
	case models.RelationFavorite:
		return apperrors.ErrAlreadyFavorited
	case models.RelationShoppingCart:
		return apperrors.ErrAlreadyInShoppingCart
	case models.RelationFollow:
		return apperrors.ErrAlreadySubscribed
	}
	return nil
}
