package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/0xzahra/gmn/internal/repository"
)

// TemplateHandler handles saved-template endpoints.
type TemplateHandler struct {
	templates *repository.TemplateRepository
}

// NewTemplateHandler creates a new template handler.
// Parameters:
//   - templates: template repository instance.
// Returns:
//   - *TemplateHandler: initialized handler.
func NewTemplateHandler(templates *repository.TemplateRepository) *TemplateHandler {
	return &TemplateHandler{templates: templates}
}

// List handles GET /api/v1/templates.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *TemplateHandler) List(c *gin.Context) {
	items := h.templates.List(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": len(items),
	})
}

// SaveTemplateRequest is the POST /api/v1/templates payload.
type SaveTemplateRequest struct {
	Text string `json:"text" binding:"required"`
}

// Save handles POST /api/v1/templates.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *TemplateHandler) Save(c *gin.Context) {
	var req SaveTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	tmpl, err := h.templates.Save(c.Request.Context(), req.Text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Save failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, tmpl)
}

// Delete handles DELETE /api/v1/templates/:id.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *TemplateHandler) Delete(c *gin.Context) {
	if err := h.templates.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Delete failed: " + err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
