package handlers

import (
	"errors"
	"net/http"
	"strings"

	apperrors "foodshare-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentUserID extracts the authenticated user's id set by the auth middleware
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	str, ok := raw.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(str)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// optionalUserID returns a pointer usable by read paths that compute
// per-requester flags, nil for anonymous requests
func optionalUserID(c *gin.Context) *uuid.UUID {
	id, ok := currentUserID(c)
	if !ok {
		return nil
	}
	return &id
}

// respondError maps the typed service errors onto HTTP statuses:
// validation 400, not-found 404, conflict 409, authorization 403,
// anything else 500
func respondError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var notFoundErr *apperrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	var existsErr *apperrors.AlreadyExistsError
	if errors.As(err, &existsErr) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	var authzErr *apperrors.AuthorizationError
	if errors.As(err, &authzErr) {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	if strings.Contains(err.Error(), "validation failed") {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
