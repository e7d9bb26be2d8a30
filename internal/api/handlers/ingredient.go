package handlers

import (
	"net/http"
	"strconv"

	"foodshare-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// IngredientHandler handles HTTP requests for ingredient catalog reads
type IngredientHandler struct {
	ingredientService service.IngredientServiceInterface
}

// NewIngredientHandler creates a new ingredient handler
func NewIngredientHandler(ingredientService service.IngredientServiceInterface) *IngredientHandler {
	return &IngredientHandler{ingredientService: ingredientService}
}

// ListIngredients handles GET /ingredients with optional name-prefix search
func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "1000"))
	search := c.Query("name")

	resp, err := h.ingredientService.GetAll(search, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetIngredient handles GET /ingredients/:id
func (h *IngredientHandler) GetIngredient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient ID"})
		return
	}

	ingredient, err := h.ingredientService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredient)
}
