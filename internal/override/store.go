// Package override holds the in-memory cache of operator-forced actions.
// The cache is authoritative for classification; persisted session status
// is kept in sync by the callers (orchestrator and admin path), not here.
package override

import (
	"sync"

	"github.com/kraken-hp/brain/internal/models"
)

// Store maps session ids to a forced action. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	entries map[string]models.Action
}

// NewStore returns an empty override store.
func NewStore() *Store {
	return &Store{entries: make(map[string]models.Action)}
}

// Get returns the forced action for a session, if any. A false second
// return means no override: fall through to heuristics.
func (s *Store) Get(sessionID string) (models.Action, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.entries[sessionID]
	return a, ok
}

// Set records a forced action for a session. Idempotent; actions other
// than tarpit/ink are ignored so the cache can never hold a value the
// classifier does not understand.
func (s *Store) Set(sessionID string, action models.Action) {
	if !action.IsOverride() {
		return
	}
	s.mu.Lock()
	s.entries[sessionID] = action
	s.mu.Unlock()
}

// Clear removes the forced action for a session. Idempotent.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	delete(s.entries, sessionID)
	s.mu.Unlock()
}

// Snapshot returns a copy of the current entries. Used by the reconcile
// job and by tests; never exposes the internal map.
func (s *Store) Snapshot() map[string]models.Action {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]models.Action, len(s.entries))
	for id, a := range s.entries {
		out[id] = a
	}
	return out
}
