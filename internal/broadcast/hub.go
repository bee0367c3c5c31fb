// Package broadcast fans enriched command events out to live observers
// (the dashboard websockets). Delivery is best-effort per observer: one
// stuck or dead observer never blocks the others or the request path.
package broadcast

import (
	"sync"
	"time"

	"github.com/kraken-hp/brain/internal/logger"
	"github.com/kraken-hp/brain/internal/metrics"
	"github.com/kraken-hp/brain/internal/models"
)

// Event is the enriched per-command payload pushed to observers.
type Event struct {
	ID        string        `json:"id"`
	SessionID string        `json:"session_id"`
	Country   string        `json:"country"`
	Lat       float64       `json:"lat"`
	Lng       float64       `json:"lng"`
	Timestamp time.Time     `json:"timestamp"`
	Command   string        `json:"command"`
	Action    models.Action `json:"action"`
	Response  string        `json:"response_snippet"`
}

// Observer is one connected event sink. Send must return an error on a
// dead connection so the hub can evict it; Close releases the transport.
type Observer interface {
	Send(Event) error
	Close() error
}

// Hub tracks the active observer set. Safe for concurrent use.
type Hub struct {
	mu        sync.Mutex
	observers map[Observer]struct{}
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{observers: make(map[Observer]struct{})}
}

// Register adds an observer to the active set.
func (h *Hub) Register(o Observer) {
	h.mu.Lock()
	h.observers[o] = struct{}{}
	n := len(h.observers)
	h.mu.Unlock()
	metrics.SetObservers(n)
}

// Unregister removes an observer, if present. The caller owns closing
// the underlying transport on a clean disconnect.
func (h *Hub) Unregister(o Observer) {
	h.mu.Lock()
	delete(h.observers, o)
	n := len(h.observers)
	h.mu.Unlock()
	metrics.SetObservers(n)
}

// Count returns the number of currently registered observers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.observers)
}

// Broadcast attempts delivery to every current observer. A failed
// delivery evicts that observer and moves on; Broadcast itself never
// fails.
func (h *Hub) Broadcast(event Event) {
	h.mu.Lock()
	targets := make([]Observer, 0, len(h.observers))
	for o := range h.observers {
		targets = append(targets, o)
	}
	h.mu.Unlock()

	for _, o := range targets {
		if err := o.Send(event); err != nil {
			logger.Log().WithError(err).WithField("session_id", event.SessionID).
				Warn("Dropping dead observer")
			metrics.IncBroadcastDropped()
			h.Unregister(o)
			_ = o.Close()
		}
	}
}
