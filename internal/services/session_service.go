package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/kraken-hp/brain/internal/geo"
	"github.com/kraken-hp/brain/internal/models"
	"github.com/kraken-hp/brain/internal/override"
)

// snippetLen bounds the response excerpt shown on dashboards and in
// broadcast events.
const snippetLen = 50

// Snippet shortens a response for display. Empty responses (ink) render
// as "N/A" so the timeline always has something to show. Truncation is
// by rune, so a multi-byte sequence is never split.
func Snippet(response string) string {
	if response == "" {
		return "N/A"
	}
	runes := []rune(response)
	if len(runes) > snippetLen {
		return string(runes[:snippetLen]) + "..."
	}
	return response
}

// HistoryLog is one log entry as surfaced by LoadHistory.
type HistoryLog struct {
	Timestamp time.Time     `json:"timestamp"`
	Command   string        `json:"command"`
	Action    models.Action `json:"action"`
	Response  string        `json:"response_snippet"`
}

// SessionHistory is one session with its most recent activity.
type SessionHistory struct {
	ID         string        `json:"id"`
	Country    string        `json:"country"`
	Lat        float64       `json:"lat"`
	Lng        float64       `json:"lng"`
	Status     models.Action `json:"status"`
	LastActive time.Time     `json:"last_active"`
	Logs       []HistoryLog  `json:"logs"`
}

// SessionService owns the durable session/log store.
type SessionService struct {
	db        *gorm.DB
	overrides *override.Store
}

// NewSessionService returns a SessionService using the provided DB and
// override cache.
func NewSessionService(db *gorm.DB, overrides *override.Store) *SessionService {
	return &SessionService{db: db, overrides: overrides}
}

// DB exposes the underlying handle for transaction composition.
func (s *SessionService) DB() *gorm.DB {
	return s.db
}

// EnsureSession creates the session row if absent. An existing row keeps
// its original started_at, ip and country.
func (s *SessionService) EnsureSession(tx *gorm.DB, sessionID, ip, country string, ts time.Time) error {
	var existing models.Session
	err := tx.First(&existing, "id = ?", sessionID).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	session := models.Session{
		ID:        sessionID,
		IP:        ip,
		Country:   country,
		StartedAt: ts,
		Status:    models.StatusActive,
	}
	return tx.Create(&session).Error
}

// UpdateStatus persists a session's status. Updating a session that has
// no row yet is a no-op, by design: an operator may pin a session before
// its first command arrives.
func (s *SessionService) UpdateStatus(tx *gorm.DB, sessionID string, status models.Action) error {
	return tx.Model(&models.Session{}).Where("id = ?", sessionID).
		Update("status", status).Error
}

// AppendLog records one processed command. Unconditional, exactly once
// per command.
func (s *SessionService) AppendLog(tx *gorm.DB, sessionID, command string, action models.Action, response string, ts time.Time) error {
	entry := models.LogEntry{
		SessionID: sessionID,
		Command:   command,
		Action:    action,
		Response:  response,
		Timestamp: ts,
	}
	return tx.Create(&entry).Error
}

// RecordCommand persists one processed command atomically: ensure the
// session row, escalate its status when a defensive action fired, append
// the log entry. A partial write can never leave a session without its
// log row.
func (s *SessionService) RecordCommand(sessionID, ip, country, command string, action models.Action, response string, ts time.Time) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.EnsureSession(tx, sessionID, ip, country, ts); err != nil {
			return err
		}
		if action.IsOverride() {
			if err := s.UpdateStatus(tx, sessionID, action); err != nil {
				return err
			}
		}
		return s.AppendLog(tx, sessionID, command, action, response, ts)
	})
}

// LoadHistory reconstructs all sessions with their 10 most recent log
// entries, newest-first, for dashboard hydration. Locations are
// recomputed from the session id. Sessions whose persisted status is an
// override are resynced into the cache, so a restarted brain picks up
// forced actions lazily even without the boot rehydration pass.
func (s *SessionService) LoadHistory() (map[string]SessionHistory, error) {
	var sessions []models.Session
	if err := s.db.Order("started_at desc").Find(&sessions).Error; err != nil {
		return nil, err
	}

	out := make(map[string]SessionHistory, len(sessions))
	for _, session := range sessions {
		if session.Status.IsOverride() {
			s.overrides.Set(session.ID, session.Status)
		}

		var entries []models.LogEntry
		if err := s.db.Where("session_id = ?", session.ID).
			Order("id desc").Limit(10).Find(&entries).Error; err != nil {
			return nil, err
		}

		loc := geo.Resolve(session.ID)
		hist := SessionHistory{
			ID:         session.ID,
			Country:    loc.Country,
			Lat:        loc.Lat,
			Lng:        loc.Lng,
			Status:     session.Status,
			LastActive: session.StartedAt,
			Logs:       make([]HistoryLog, 0, len(entries)),
		}
		for _, entry := range entries {
			hist.Logs = append(hist.Logs, HistoryLog{
				Timestamp: entry.Timestamp,
				Command:   entry.Command,
				Action:    entry.Action,
				Response:  Snippet(entry.Response),
			})
		}
		if len(entries) > 0 {
			hist.LastActive = entries[0].Timestamp
		}
		out[session.ID] = hist
	}
	return out, nil
}

// OverriddenSessions returns ids and statuses of sessions whose durable
// status is tarpit or ink. Used by the boot/cron rehydration pass.
func (s *SessionService) OverriddenSessions() ([]models.Session, error) {
	var sessions []models.Session
	err := s.db.Where("status IN ?", []models.Action{models.ActionTarpit, models.ActionInk}).
		Find(&sessions).Error
	return sessions, err
}
