package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kraken-hp/brain/internal/api/middleware"
	"github.com/kraken-hp/brain/internal/services"
)

// HistoryHandler serves the dashboard hydration view.
type HistoryHandler struct {
	brain *services.BrainService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(brain *services.BrainService) *HistoryHandler {
	return &HistoryHandler{brain: brain}
}

// List returns every session with its 10 most recent log entries,
// newest-first, locations recomputed from session ids.
func (h *HistoryHandler) List(c *gin.Context) {
	sessions, err := h.brain.History()
	if err != nil {
		middleware.GetRequestLogger(c).WithError(err).Error("Failed to load history")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}
