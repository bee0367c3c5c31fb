package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kraken-hp/brain/internal/broadcast"
	"github.com/kraken-hp/brain/internal/classify"
	"github.com/kraken-hp/brain/internal/geo"
	"github.com/kraken-hp/brain/internal/llm"
	"github.com/kraken-hp/brain/internal/logger"
	"github.com/kraken-hp/brain/internal/metrics"
	"github.com/kraken-hp/brain/internal/models"
	"github.com/kraken-hp/brain/internal/override"
)

// ErrInvalidAction is returned when the admin endpoint receives an action
// outside {tarpit, ink, reset}.
var ErrInvalidAction = fmt.Errorf("action must be one of tarpit, ink, reset")

// CommandResult is what the facade gets back for one command.
type CommandResult struct {
	Action     models.Action
	Payload    string
	HasPayload bool
}

// BrainService sequences the whole process_command use case: override
// lookup, classification, backend invocation, persistence, broadcast.
type BrainService struct {
	sessions  *SessionService
	overrides *override.Store
	hub       *broadcast.Hub
	generator llm.Generator
	alerts    *AlertService

	// Per-session serialization of the read-override/classify/persist
	// sequence. Locks are never reclaimed; session ids are bounded by the
	// facade's connection count.
	lockMu sync.Mutex
	locks  map[string]*sync.Mutex
}

// NewBrainService wires the orchestrator. generator may be nil, in which
// case every deferred command gets the fixed fallback reply.
func NewBrainService(sessions *SessionService, overrides *override.Store, hub *broadcast.Hub, generator llm.Generator, alerts *AlertService) *BrainService {
	return &BrainService{
		sessions:  sessions,
		overrides: overrides,
		hub:       hub,
		generator: generator,
		alerts:    alerts,
		locks:     make(map[string]*sync.Mutex),
	}
}

func (s *BrainService) sessionLock(sessionID string) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()
	mu, ok := s.locks[sessionID]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[sessionID] = mu
	}
	return mu
}

// ProcessCommand decides how the honeypot answers one command and leaves
// every trace of it: session row, log row, live event. Backend failures
// never surface; persistence failures fail the call.
func (s *BrainService) ProcessCommand(ctx context.Context, sessionID, command, ip string) (CommandResult, error) {
	mu := s.sessionLock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	var overridePtr *models.Action
	if forced, ok := s.overrides.Get(sessionID); ok {
		overridePtr = &forced
	}

	verdict := classify.Classify(command, overridePtr)

	payload := verdict.Payload
	hasPayload := verdict.HasPayload
	if verdict.Deferred {
		payload = s.generate(ctx, command)
		hasPayload = true
	}

	loc := geo.Resolve(sessionID)
	now := time.Now().UTC()

	response := ""
	if hasPayload {
		response = payload
	}
	if err := s.sessions.RecordCommand(sessionID, ip, loc.Country, command, verdict.Action, response, now); err != nil {
		return CommandResult{}, fmt.Errorf("record command: %w", err)
	}

	// A defensive verdict pins the session until an operator resets it.
	if verdict.Action.IsOverride() {
		escalated := overridePtr == nil
		s.overrides.Set(sessionID, verdict.Action)
		if escalated {
			go s.alerts.NotifyEscalation(sessionID, verdict.Action, command)
		}
	}

	metrics.IncCommand(string(verdict.Action))

	s.hub.Broadcast(broadcast.Event{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Country:   loc.Country,
		Lat:       loc.Lat,
		Lng:       loc.Lng,
		Timestamp: now,
		Command:   command,
		Action:    verdict.Action,
		Response:  Snippet(response),
	})

	return CommandResult{Action: verdict.Action, Payload: payload, HasPayload: hasPayload}, nil
}

func (s *BrainService) generate(ctx context.Context, command string) string {
	if s.generator == nil {
		return llm.FallbackReply
	}
	text, err := s.generator.Generate(ctx, command)
	if err != nil {
		logger.Log().WithError(err).Warn("Generative backend failed, using fallback reply")
		metrics.IncLLMFailure()
		return llm.FallbackReply
	}
	return text
}

// AdminOverride pins a session to tarpit or ink, or resets it to active.
// No check that the session exists: pinning an unseen session is allowed
// and takes effect when its first command arrives.
func (s *BrainService) AdminOverride(sessionID string, action models.Action) error {
	switch action {
	case models.ActionTarpit, models.ActionInk:
		s.overrides.Set(sessionID, action)
		if err := s.sessions.UpdateStatus(s.sessions.DB(), sessionID, action); err != nil {
			return fmt.Errorf("persist override: %w", err)
		}
	case models.ActionReset:
		s.overrides.Clear(sessionID)
		if err := s.sessions.UpdateStatus(s.sessions.DB(), sessionID, models.StatusActive); err != nil {
			return fmt.Errorf("persist reset: %w", err)
		}
	default:
		return ErrInvalidAction
	}

	metrics.IncOverride(string(action))
	logger.WithFields(map[string]interface{}{
		"session_id": sessionID,
		"action":     action,
	}).Info("Admin override applied")
	return nil
}

// RehydrateOverrides reloads forced actions from persisted session
// status. Run at boot and periodically, so a restarted brain honors
// overrides immediately instead of waiting for a history read. Add-only:
// cache entries for sessions without rows (pre-pinned sessions) survive.
func (s *BrainService) RehydrateOverrides() error {
	sessions, err := s.sessions.OverriddenSessions()
	if err != nil {
		return fmt.Errorf("load overridden sessions: %w", err)
	}
	for _, session := range sessions {
		s.overrides.Set(session.ID, session.Status)
	}
	if len(sessions) > 0 {
		logger.Log().WithField("count", len(sessions)).Debug("Override cache rehydrated")
	}
	return nil
}

// History returns the dashboard hydration view.
func (s *BrainService) History() (map[string]SessionHistory, error) {
	return s.sessions.LoadHistory()
}
