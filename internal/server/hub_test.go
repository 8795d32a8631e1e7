package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

func TestHubRegisterUnregister(t *testing.T) {
	hub := NewHub(log.New(new(bytes.Buffer)))
	client := &Client{hub: hub, sessionID: "s1", send: make(chan []byte, 1)}

	hub.registerClient(client)
	require.True(t, hub.sessions["s1"][client])

	hub.unregisterClient(client)
	_, exists := hub.sessions["s1"]
	assert.False(t, exists, "empty sessions should be removed")

	_, open := <-client.send
	assert.False(t, open, "send channel should be closed")

	// Unregistering twice is a no-op.
	hub.unregisterClient(client)
}

func TestHubBroadcastOnlyToSession(t *testing.T) {
	hub := NewHub(log.New(new(bytes.Buffer)))
	a := &Client{hub: hub, sessionID: "a", send: make(chan []byte, 1)}
	b := &Client{hub: hub, sessionID: "b", send: make(chan []byte, 1)}
	hub.registerClient(a)
	hub.registerClient(b)

	state := t2048.State{Score: 8}
	hub.broadcastMessage(&Message{SessionID: "a", Event: EventStateUpdate, State: &state})

	require.Len(t, a.send, 1)
	assert.Empty(t, b.send)

	var msg Message
	require.NoError(t, json.Unmarshal(<-a.send, &msg))
	assert.Equal(t, EventStateUpdate, msg.Event)
	assert.Equal(t, 8, msg.State.Score)
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := NewHub(log.New(new(bytes.Buffer)))
	slow := &Client{hub: hub, sessionID: "s", send: make(chan []byte)}
	hub.registerClient(slow)

	hub.broadcastMessage(&Message{SessionID: "s", Event: EventStateUpdate})
	assert.NotContains(t, hub.sessions, "s")
}

func TestWebSocketReceivesMoves(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.Hub().Run(ctx)

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	sess := createSession(t, srv.Handler(), 11)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/games/" + sess.ID + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	defer resp.Body.Close()

	// Registration is asynchronous, so publish a few resets before reading.
	for range 10 {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/games/"+sess.ID+"/reset", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		time.Sleep(20 * time.Millisecond)
	}

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg Message
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, sess.ID, msg.SessionID)
	assert.Equal(t, EventStateUpdate, msg.Event)
	require.NotNil(t, msg.State)
	assert.Equal(t, 0, msg.State.Moves)
}

func TestWebSocketUnknownSession(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/games/missing/ws"
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
