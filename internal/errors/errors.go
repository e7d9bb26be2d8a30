package errors

import (
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this user"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Is enables errors.Is() comparison for ValidationError
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Field == t.Field && e.Message == t.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// StorageError wraps unexpected database failures so callers can
// distinguish them from domain rejections.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrUserNotFound       = &NotFoundError{Entity: "user"}
	ErrTagNotFound        = &NotFoundError{Entity: "tag"}
	ErrIngredientNotFound = &NotFoundError{Entity: "ingredient"}
	ErrRecipeNotFound     = &NotFoundError{Entity: "recipe"}
)

// Already Exists Errors
var (
	ErrUserExists            = &AlreadyExistsError{Entity: "user", Context: "with this email or username"}
	ErrTagExists             = &AlreadyExistsError{Entity: "tag", Context: "with this slug"}
	ErrIngredientExists      = &AlreadyExistsError{Entity: "ingredient", Context: "with this name and unit"}
	ErrAlreadyFavorited      = &AlreadyExistsError{Entity: "favorite", Context: "for this user and recipe"}
	ErrAlreadyInShoppingCart = &AlreadyExistsError{Entity: "shopping cart entry", Context: "for this user and recipe"}
	ErrAlreadySubscribed     = &AlreadyExistsError{Entity: "subscription", Context: "for this subscriber and author"}
	ErrDuplicateRecipeLine   = &AlreadyExistsError{Entity: "ingredient line", Context: "for this recipe and ingredient"}
)

// Validation Errors
var (
	ErrNoIngredients       = &ValidationError{Field: "ingredients", Message: "at least one ingredient is required"}
	ErrDuplicateIngredient = &ValidationError{Field: "ingredients", Message: "the same ingredient cannot be listed twice"}
	ErrInvalidAmount       = &ValidationError{Field: "amount", Message: "amount must be at least 1"}
	ErrSelfFollow          = &ValidationError{Field: "author", Message: "cannot subscribe to yourself"}
	ErrInvalidCookingTime  = &ValidationError{Field: "cooking_time", Message: "cooking time must be positive"}
)

// Authentication/Authorization Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrNotRecipeOwner     = &AuthorizationError{Message: "only the author can modify this recipe"}
)
