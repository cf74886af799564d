package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/0xzahra/gmn/internal/domain"
	"github.com/0xzahra/gmn/internal/service"
)

// SignalHandler handles signal generation, feedback, art, and share endpoints.
type SignalHandler struct {
	signals *service.SignalService
}

// NewSignalHandler creates a new signal handler.
// Parameters:
//   - signals: signal orchestrator instance.
// Returns:
//   - *SignalHandler: initialized handler.
func NewSignalHandler(signals *service.SignalService) *SignalHandler {
	return &SignalHandler{signals: signals}
}

// GenerateRequest is the POST /api/v1/signals payload.
type GenerateRequest struct {
	Mode      string   `json:"mode" binding:"required"`
	Tags      []string `json:"tags"`
	ImageData string   `json:"image_data"`
}

// Generate handles POST /api/v1/signals.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *SignalHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	mode := domain.SignalMode(req.Mode)
	if !mode.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid mode: must be GM or GN",
		})
		return
	}

	result, err := h.signals.Generate(c.Request.Context(), service.GenerateInput{
		Mode:      mode,
		Tags:      req.Tags,
		ImageData: req.ImageData,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyInput):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrGenerationInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Generation failed: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// Current handles GET /api/v1/signals/current.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *SignalHandler) Current(c *gin.Context) {
	result, err := h.signals.Current()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Like handles POST /api/v1/signals/captions/:id/like.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *SignalHandler) Like(c *gin.Context) {
	caption, err := h.signals.Like(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, caption)
}

// Dislike handles POST /api/v1/signals/captions/:id/dislike.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *SignalHandler) Dislike(c *gin.Context) {
	caption, err := h.signals.Dislike(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, caption)
}

// ArtRequest is the POST /api/v1/signals/captions/:id/art payload.
type ArtRequest struct {
	Style string `json:"style" binding:"required"`
}

// Art handles POST /api/v1/signals/captions/:id/art.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *SignalHandler) Art(c *gin.Context) {
	var req ArtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	style := domain.ImageStyle(req.Style)
	if !style.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid style: must be MEME or ALT_STYLE",
		})
		return
	}

	caption, err := h.signals.GenerateArt(c.Request.Context(), c.Param("id"), style)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, caption)
}

// Share handles GET /api/v1/signals/captions/:id/share.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *SignalHandler) Share(c *gin.Context) {
	links, err := h.signals.ShareLinksFor(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, links)
}
