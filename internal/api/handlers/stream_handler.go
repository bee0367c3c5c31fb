package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/kraken-hp/brain/internal/api/middleware"
	"github.com/kraken-hp/brain/internal/broadcast"
)

// StreamHandler upgrades dashboard connections to a server-push event
// channel.
type StreamHandler struct {
	hub      *broadcast.Hub
	upgrader websocket.Upgrader
}

// NewStreamHandler creates a new StreamHandler attached to the hub.
func NewStreamHandler(hub *broadcast.Hub) *StreamHandler {
	return &StreamHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			// Observers are unauthenticated dashboards; origin checking is
			// handled the same way as the CORS policy on the REST surface.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Connect registers the observer and drains inbound frames until the
// peer goes away. Client traffic carries no meaning; reading it only
// detects disconnects.
func (h *StreamHandler) Connect(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		middleware.GetRequestLogger(c).WithError(err).Warn("Websocket upgrade failed")
		return
	}

	observer := broadcast.NewWSObserver(conn)
	h.hub.Register(observer)
	middleware.GetRequestLogger(c).WithField("observers", h.hub.Count()).Info("Observer connected")

	defer func() {
		h.hub.Unregister(observer)
		_ = observer.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
