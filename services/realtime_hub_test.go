package services

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

func TestRealtimeHubBroadcast(t *testing.T) {
	hub := NewRealtimeHub()
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

	registered := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.Register(&WSClient{UserID: 7, Conn: conn})
		close(registered)
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	<-registered

	hub.Broadcast(7, map[string]string{"kind": "notification.created", "message": "hello"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "hello", got["message"])
}

func TestRealtimeHubBroadcastToOtherUserIsSilent(t *testing.T) {
	hub := NewRealtimeHub()

	// no connections registered for user 99; must not panic
	hub.Broadcast(99, map[string]string{"kind": "noop"})
}
