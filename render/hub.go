package render

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/katalvlaran/graphplay/metrics"
	"github.com/katalvlaran/graphplay/playback"
)

const (
	writeWait      = 5 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 1024

	defaultSendBuffer = 64
)

// ErrHubClosed is returned by ServeHTTP once the hub is closed.
var ErrHubClosed = errors.New("render: hub closed")

// CommandRequest is what viewers send to drive playback.
type CommandRequest struct {
	Command string `json:"command"`
}

// Hub broadcasts frames to every connected websocket viewer. Viewers that
// cannot keep up are disconnected rather than slowing the controller down.
type Hub struct {
	upgrader websocket.Upgrader
	log      *slog.Logger
	buffer   int
	greet    func() (Message, bool)
	onCmd    func(name string) error

	mu      sync.RWMutex
	clients map[string]*client
	closed  bool
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// HubOption configures a Hub.
type HubOption func(*Hub)

// WithHubLogger sets the hub logger.
func WithHubLogger(l *slog.Logger) HubOption {
	return func(h *Hub) { h.log = l }
}

// WithSendBuffer sets the per-viewer queue length. Panics if n < 1.
func WithSendBuffer(n int) HubOption {
	if n < 1 {
		panic("render: WithSendBuffer requires n >= 1")
	}

	return func(h *Hub) { h.buffer = n }
}

// WithGreeting sends the message returned by fn to every new viewer, when
// fn reports one is available.
func WithGreeting(fn func() (Message, bool)) HubOption {
	return func(h *Hub) { h.greet = fn }
}

// WithCommandHandler routes CommandRequest messages from viewers to fn.
func WithCommandHandler(fn func(name string) error) HubOption {
	return func(h *Hub) { h.onCmd = fn }
}

// NewHub returns an empty hub.
func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		log:     slog.Default(),
		buffer:  defaultSendBuffer,
		clients: make(map[string]*client),
	}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// ServeHTTP upgrades the request and serves the viewer until it leaves.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	closed := h.closed
	h.mu.RUnlock()
	if closed {
		http.Error(w, ErrHubClosed.Error(), http.StatusServiceUnavailable)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Debug("websocket upgrade failed", "error", err)
		return
	}

	c := &client{id: uuid.NewString(), conn: conn, send: make(chan []byte, h.buffer)}
	if h.greet != nil {
		if m, ok := h.greet(); ok {
			if data, err := json.Marshal(m); err == nil {
				c.send <- data
			}
		}
	}
	if !h.add(c) {
		_ = conn.Close()
		return
	}
	h.log.Info("viewer connected", "client", c.id, "remote", r.RemoteAddr)

	go h.writePump(c)
	h.readPump(c)
}

// Render implements playback.Renderer.
func (h *Hub) Render(_ context.Context, f playback.Frame) error {
	data, err := json.Marshal(NewMessage(f))
	if err != nil {
		return err
	}
	h.Broadcast(data)

	return nil
}

// Broadcast queues data for every viewer, dropping those whose queue is full.
func (h *Hub) Broadcast(data []byte) {
	var slow []*client
	h.mu.RLock()
	for _, c := range h.clients {
		select {
		case c.send <- data:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.log.Warn("dropping slow viewer", "client", c.id)
		h.remove(c)
	}
}

// Clients returns the number of connected viewers.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

// Close disconnects every viewer and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		h.remove(c)
	}
}

func (h *Hub) add(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c.id] = c
	metrics.WebsocketClients.Inc()

	return true
}

// remove unregisters c and closes its queue; the write pump then closes the
// connection. Closing under the write lock keeps Broadcast from sending on a
// closed channel.
func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c.id]; !ok {
		return
	}
	delete(h.clients, c.id)
	close(c.send)
	metrics.WebsocketClients.Dec()
}

func (h *Hub) readPump(c *client) {
	defer func() {
		h.remove(c)
		h.log.Info("viewer disconnected", "client", c.id)
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var req CommandRequest
		if err := c.conn.ReadJSON(&req); err != nil {
			// A bad payload costs only its own frame; the next read discards the rest.
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) {
				h.log.Debug("malformed viewer message", "client", c.id, "error", err)
				continue
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug("viewer read failed", "client", c.id, "error", err)
			}
			return
		}
		if h.onCmd == nil || req.Command == "" {
			continue
		}
		if err := h.onCmd(req.Command); err != nil {
			h.log.Warn("viewer command rejected", "client", c.id, "command", req.Command, "error", err)
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				h.remove(c)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.remove(c)
				return
			}
		}
	}
}
