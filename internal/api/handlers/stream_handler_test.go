package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraken-hp/brain/internal/broadcast"
)

func TestStreamReceivesEvents(t *testing.T) {
	router := newTestRouter(t, stubGenerator{text: "root"})
	server := httptest.NewServer(router)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/stream"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil {
		defer resp.Body.Close()
	}
	defer conn.Close()

	// Client traffic on the channel is ignored; it must not break anything.
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("hello?")))

	body := strings.NewReader(`{"session_id":"s1","command":"whoami"}`)
	req, err := http.NewRequest(http.MethodPost, server.URL+"/api/v1/process_command", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	httpResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer httpResp.Body.Close()
	require.Equal(t, http.StatusOK, httpResp.StatusCode)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	// The dashboard reads these exact field names off the frame.
	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, "root", fields["response_snippet"])
	assert.Equal(t, "REPLY", fields["action"])
	assert.NotContains(t, fields, "response")

	var event broadcast.Event
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, "s1", event.SessionID)
	assert.Equal(t, "whoami", event.Command)
	assert.Equal(t, "root", event.Response)
	assert.NotEmpty(t, event.Country)
}

func TestStreamDisconnectEvictsObserver(t *testing.T) {
	router := newTestRouter(t, stubGenerator{text: "root"})
	server := httptest.NewServer(router)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/stream"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	conn.Close()

	// Processing a command after the observer vanished must still succeed.
	body := strings.NewReader(`{"session_id":"s1","command":"ls"}`)
	req, err := http.NewRequest(http.MethodPost, server.URL+"/api/v1/process_command", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	httpResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer httpResp.Body.Close()
	assert.Equal(t, http.StatusOK, httpResp.StatusCode)
}
