package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kraken-hp/brain/internal/api/middleware"
	"github.com/kraken-hp/brain/internal/models"
	"github.com/kraken-hp/brain/internal/services"
)

// AdminHandler exposes the operator override endpoint.
type AdminHandler struct {
	brain *services.BrainService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(brain *services.BrainService) *AdminHandler {
	return &AdminHandler{brain: brain}
}

type overrideRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Action    string `json:"action" binding:"required"`
}

// Override pins a session's behavior to tarpit/ink or resets it. The
// session does not have to exist yet.
func (h *AdminHandler) Override(c *gin.Context) {
	var req overrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id and action are required"})
		return
	}

	// Dashboards send uppercase action names; accept any casing.
	action := models.Action(strings.ToUpper(req.Action))
	if err := h.brain.AdminOverride(req.SessionID, action); err != nil {
		if errors.Is(err, services.ErrInvalidAction) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		middleware.GetRequestLogger(c).WithError(err).Error("Failed to apply override")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to apply override"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "action": action})
}
