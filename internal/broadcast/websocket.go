package broadcast

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

// WSObserver adapts a websocket connection to the Observer interface.
// Writes are serialized; gorilla permits only one concurrent writer.
type WSObserver struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

// NewWSObserver wraps an upgraded connection.
func NewWSObserver(conn *websocket.Conn) *WSObserver {
	return &WSObserver{conn: conn}
}

// Send pushes one event as a JSON frame. A write deadline bounds how
// long a stuck peer can hold up the broadcast loop.
func (w *WSObserver) Send(event Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return w.conn.WriteJSON(event)
}

// Close shuts down the underlying connection.
func (w *WSObserver) Close() error {
	return w.conn.Close()
}
