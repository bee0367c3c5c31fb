package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kraken-hp/brain/internal/api/middleware"
	"github.com/kraken-hp/brain/internal/services"
)

// CommandHandler receives commands forwarded by the terminal facade.
type CommandHandler struct {
	brain *services.BrainService
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(brain *services.BrainService) *CommandHandler {
	return &CommandHandler{brain: brain}
}

type commandRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Command   string `json:"command"`
	IP        string `json:"ip"`
}

// Process classifies one command and returns the action the facade must
// perform. The payload field is omitted for ink: the facade fabricates
// garbage locally.
func (h *CommandHandler) Process(c *gin.Context) {
	var req commandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}

	ip := req.IP
	if ip == "" {
		ip = c.ClientIP()
	}

	result, err := h.brain.ProcessCommand(c.Request.Context(), req.SessionID, req.Command, ip)
	if err != nil {
		middleware.GetRequestLogger(c).WithError(err).Error("Failed to process command")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process command"})
		return
	}

	resp := gin.H{"action": result.Action}
	if result.HasPayload {
		resp["payload"] = result.Payload
	}
	c.JSON(http.StatusOK, resp)
}
