package services

import (
	"fmt"

	"github.com/containrrr/shoutrrr"

	"github.com/kraken-hp/brain/internal/logger"
	"github.com/kraken-hp/brain/internal/models"
)

// AlertService pushes escalation notices to operator endpoints (Discord,
// Slack, generic webhooks; anything shoutrrr can address). Delivery is
// best-effort: failures are logged and swallowed.
type AlertService struct {
	urls []string
}

// NewAlertService returns an AlertService for the configured URLs. An
// empty list disables alerting.
func NewAlertService(urls []string) *AlertService {
	return &AlertService{urls: urls}
}

// NotifyEscalation announces that a session was escalated to a defensive
// action, either by heuristics or by an operator.
func (s *AlertService) NotifyEscalation(sessionID string, action models.Action, command string) {
	if len(s.urls) == 0 {
		return
	}

	msg := fmt.Sprintf("[%s] session %s escalated to %s (command: %q)",
		"kraken-brain", sessionID, action, command)
	for _, url := range s.urls {
		if err := shoutrrr.Send(url, msg); err != nil {
			logger.Log().WithError(err).WithField("session_id", sessionID).
				Warn("Failed to deliver escalation alert")
		}
	}
}
