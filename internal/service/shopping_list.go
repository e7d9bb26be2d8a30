package service

import (
	"fmt"
	"strings"
	"unicode"

	apperrors "foodshare-backend/internal/errors"
	"foodshare-backend/internal/repository"

	"github.com/google/uuid"
)

// ShoppingListHeader is the fixed first line of the rendered document
const ShoppingListHeader = "Shopping list: \n"

// ShoppingListFilename is the suggested download filename
const ShoppingListFilename = "shopping-list.txt"

// ShoppingListService renders a user's cart as a deduplicated,
// quantity-summed plain-text report
type ShoppingListService struct {
	recipeRepo repository.RecipeRepositoryInterface
}

// Ensure ShoppingListService implements ShoppingListServiceInterface
var _ ShoppingListServiceInterface = (*ShoppingListService)(nil)

// NewShoppingListService creates a new ShoppingListService
func NewShoppingListService(recipeRepo repository.RecipeRepositoryInterface) *ShoppingListService {
	return &ShoppingListService{recipeRepo: recipeRepo}
}

// Render builds the complete document in memory. An empty cart yields
// the header alone.
func (s *ShoppingListService) Render(userID uuid.UUID) (string, error) {
	rows, err := s.recipeRepo.ShoppingListRows(userID)
	if err != nil {
		return "", &apperrors.StorageError{Op: "build shopping list", Err: err}
	}

	var b strings.Builder
	b.WriteString(ShoppingListHeader)
	for i, row := range rows {
		fmt.Fprintf(&b, "%d. %s (%s) - %d;\n",
			i+1, capitalize(row.Name), row.MeasurementUnit, row.Total)
	}
	return b.String(), nil
}

// capitalize upper-cases the first rune and lower-cases the rest
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
