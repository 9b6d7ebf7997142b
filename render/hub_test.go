package render_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/katalvlaran/graphplay/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, h *render.Hub) (*websocket.Conn, func()) {
	t.Helper()
	srv := httptest.NewServer(h)
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	return conn, func() {
		_ = conn.Close()
		srv.Close()
	}
}

func readMessage(t *testing.T, conn *websocket.Conn) render.Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var m render.Message
	require.NoError(t, json.Unmarshal(data, &m))

	return m
}

func TestHub_BroadcastsFrames(t *testing.T) {
	h := render.NewHub()
	defer h.Close()
	conn, done := dial(t, h)
	defer done()

	require.Eventually(t, func() bool { return h.Clients() == 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, h.Render(context.Background(), markFrame()))

	m := readMessage(t, conn)
	assert.Equal(t, "mark", m.Kind)
	assert.Equal(t, []string{"A", "B"}, m.Pair)
	assert.Equal(t, []string{"e1"}, m.View.MarkedEdges)
	assert.Equal(t, 5, m.Progress.Remaining)
}

func TestHub_GreetsNewViewers(t *testing.T) {
	h := render.NewHub(render.WithGreeting(func() (render.Message, bool) {
		return render.Message{Type: "hello", State: "idle"}, true
	}))
	defer h.Close()
	conn, done := dial(t, h)
	defer done()

	m := readMessage(t, conn)
	assert.Equal(t, "hello", m.Type)
	assert.Equal(t, "idle", m.State)
}

func TestHub_RoutesViewerCommands(t *testing.T) {
	var (
		mu  sync.Mutex
		got []string
	)
	h := render.NewHub(render.WithCommandHandler(func(name string) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, name)
		return nil
	}))
	defer h.Close()
	conn, done := dial(t, h)
	defer done()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"command":`)))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"command":42}`)))
	require.NoError(t, conn.WriteJSON(render.CommandRequest{Command: "play"}))
	require.NoError(t, conn.WriteJSON(render.CommandRequest{Command: "step-back"}))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 2
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	assert.Equal(t, []string{"play", "step-back"}, got, "malformed messages are skipped, not fatal")
	mu.Unlock()
}

func TestHub_ViewerDisconnect(t *testing.T) {
	h := render.NewHub()
	defer h.Close()
	conn, done := dial(t, h)
	defer done()

	require.Eventually(t, func() bool { return h.Clients() == 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return h.Clients() == 0 }, time.Second, 5*time.Millisecond)
}

func TestHub_CloseDisconnectsViewers(t *testing.T) {
	h := render.NewHub()
	conn, done := dial(t, h)
	defer done()

	require.Eventually(t, func() bool { return h.Clients() == 1 }, time.Second, 5*time.Millisecond)
	h.Close()
	assert.Zero(t, h.Clients())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err, "the hub closes the connection")
}

func TestHub_RenderWithoutViewers(t *testing.T) {
	h := render.NewHub()
	defer h.Close()
	assert.NoError(t, h.Render(context.Background(), markFrame()))
}

func TestWithSendBuffer_Panics(t *testing.T) {
	assert.Panics(t, func() { render.WithSendBuffer(0) })
}
