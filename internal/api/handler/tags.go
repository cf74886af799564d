package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/0xzahra/gmn/internal/domain"
)

// TagsHandler serves the shortcut-tag catalog and the quote endpoint.
type TagsHandler struct{}

// NewTagsHandler creates a new tags handler.
func NewTagsHandler() *TagsHandler {
	return &TagsHandler{}
}

// List handles GET /api/v1/tags.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *TagsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tags": domain.Shortcuts,
	})
}

// Quote handles GET /api/v1/quote.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *TagsHandler) Quote(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"quote": domain.RandomQuote(),
	})
}
