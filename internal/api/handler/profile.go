package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/0xzahra/gmn/internal/domain"
	"github.com/0xzahra/gmn/internal/repository"
)

// ProfileHandler round-trips the stored operator profile.
type ProfileHandler struct {
	profiles *repository.ProfileRepository
}

// NewProfileHandler creates a new profile handler.
// Parameters:
//   - profiles: profile repository instance.
// Returns:
//   - *ProfileHandler: initialized handler.
func NewProfileHandler(profiles *repository.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Get handles GET /api/v1/profile.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.profiles.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No profile stored"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Load failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// Put handles PUT /api/v1/profile.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *ProfileHandler) Put(c *gin.Context) {
	var p domain.UserProfile
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	if err := h.profiles.Put(c.Request.Context(), &p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Save failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /api/v1/profile.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *ProfileHandler) Delete(c *gin.Context) {
	if err := h.profiles.Delete(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Delete failed: " + err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
