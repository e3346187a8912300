package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	hub := NewHub()
	go hub.Run(ctx)
	return hub
}

func dialHub(t *testing.T, hub *Hub, userID uuid.UUID) *websocket.Conn {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := NewClient(conn, hub, userID)
		if hub.Register(client) {
			client.Run(context.Background())
		}
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.Eventually(t, func() bool { return hub.ClientCount() > 0 }, time.Second, 10*time.Millisecond)
	return conn
}

func TestHub_PublishReachesAdmins(t *testing.T) {
	hub := startHub(t)
	conn := dialHub(t, hub, uuid.New())

	require.NoError(t, hub.Publish(EventInboxUnread, map[string]int{"count": 3}))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Type string         `json:"type"`
		Data map[string]int `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, EventInboxUnread, msg.Type)
	assert.Equal(t, 3, msg.Data["count"])
}

func TestHub_PublishWithoutClients(t *testing.T) {
	hub := NewHub()
	// хаб не запущен: события копятся в буфере и не блокируют вызывающего
	for i := 0; i < 100; i++ {
		require.NoError(t, hub.Publish(EventInboxUnread, i))
	}
	assert.Equal(t, 0, hub.ClientCount())
}
