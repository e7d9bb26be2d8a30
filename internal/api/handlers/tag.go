package handlers

import (
	"net/http"

	"foodshare-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TagHandler handles HTTP requests for tag catalog reads
type TagHandler struct {
	tagService service.TagServiceInterface
}

// NewTagHandler creates a new tag handler
func NewTagHandler(tagService service.TagServiceInterface) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// ListTags handles GET /tags
func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.tagService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

// GetTag handles GET /tags/:id
func (h *TagHandler) GetTag(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tag ID"})
		return
	}

	tag, err := h.tagService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}
