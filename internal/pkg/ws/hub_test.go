package ws

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
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func TestNewHub(t *testing.T) {
	hub := NewHub()

	assert.NotNil(t, hub)
	assert.Equal(t, 0, hub.ConnectionCount())
}

func TestHub_Broadcast_NoConnections(t *testing.T) {
	hub := NewHub()

	msg := &Message{
		Type: "prices_updated",
		Data: map[string]string{"FARM": "0.01"},
	}

	// Broadcasting to nobody is fine
	err := hub.Broadcast(msg)
	assert.NoError(t, err)
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub()

	c1 := &Client{UserID: 1}
	c2 := &Client{UserID: 1}
	c3 := &Client{UserID: 2}

	hub.Register(c1)
	hub.Register(c2)
	hub.Register(c3)
	assert.Equal(t, 3, hub.ConnectionCount())

	hub.Unregister(c2)
	assert.Equal(t, 2, hub.ConnectionCount())

	hub.Unregister(c1)
	hub.Unregister(c3)
	assert.Equal(t, 0, hub.ConnectionCount())

	// Unregistering twice is a no-op
	hub.Unregister(c1)
	assert.Equal(t, 0, hub.ConnectionCount())
}

func TestHub_Broadcast_RealWebSocket(t *testing.T) {
	hub := NewHub()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)

		hub.Register(&Client{UserID: 42, Conn: conn})
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Wait for registration
	deadline := time.Now().Add(time.Second)
	for hub.ConnectionCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	require.Equal(t, 1, hub.ConnectionCount())

	err = hub.Broadcast(&Message{Type: "prices_updated", Data: map[string]string{"FARM": "0.01"}})
	require.NoError(t, err)

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg Message
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, "prices_updated", msg.Type)
}
