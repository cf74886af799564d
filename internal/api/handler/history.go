package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/0xzahra/gmn/internal/domain"
	"github.com/0xzahra/gmn/internal/repository"
)

// HistoryHandler handles history view endpoints.
type HistoryHandler struct {
	history *repository.HistoryRepository
}

// NewHistoryHandler creates a new history handler.
// Parameters:
//   - history: history repository instance.
// Returns:
//   - *HistoryHandler: initialized handler.
func NewHistoryHandler(history *repository.HistoryRepository) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// List handles GET /api/v1/history. Filter and sort are presentation
// only; the stored order never changes. Unrecognized values fall back
// to ALL/NEWEST.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *HistoryHandler) List(c *gin.Context) {
	items := h.history.List(c.Request.Context())

	filter := domain.HistoryFilter(c.DefaultQuery("mode", string(domain.FilterAll)))
	order := domain.HistorySort(c.DefaultQuery("sort", string(domain.SortNewest)))

	items = domain.FilterByMode(items, filter)
	items = domain.SortByTime(items, order)

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": len(items),
	})
}
