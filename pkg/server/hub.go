package server

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// maxFrameSize bounds inbound client frames; clients only send dismissals.
const maxFrameSize = 4096

// hub fans snapshot frames out to connected clients.
type hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	last    []byte
	closed  bool

	onConnect    func()
	onDisconnect func()
	onError      func(error)
	logger       *slog.Logger
}

func newHub(logger *slog.Logger) *hub {
	return &hub{
		clients: make(map[*client]struct{}),
		logger:  logger,
	}
}

// publish stores frame as the latest snapshot and queues it for every
// client. Clients whose buffer is full are dropped.
func (h *hub) publish(frame []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = frame
	for c := range h.clients {
		select {
		case c.send <- frame:
		default:
			h.logger.Warn("dropping slow client", "remote", c.remote)
			h.removeLocked(c)
		}
	}
}

// add registers c and queues the latest snapshot for it.
func (h *hub) add(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	if h.last != nil {
		c.send <- h.last
	}
	if h.onConnect != nil {
		h.onConnect()
	}
	return true
}

func (h *hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *hub) removeLocked(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	if h.onDisconnect != nil {
		h.onDisconnect()
	}
}

// count returns the number of connected clients.
func (h *hub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// close disconnects every client and refuses new ones.
func (h *hub) close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		h.removeLocked(c)
	}
}

func (h *hub) reportError(err error) {
	if h.onError != nil {
		h.onError(err)
	}
}

// client is one WebSocket connection.
type client struct {
	conn   *websocket.Conn
	send   chan []byte
	remote string
}

// writePump drains c.send onto the connection and pings while idle.
// It owns all writes to conn.
func (s *Server) writePump(c *client) {
	ticker := time.NewTicker(s.config.PingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server closing"))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				s.hub.reportError(err)
				s.logger.Debug("write failed", "remote", c.remote, "error", err)
				s.hub.remove(c)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.hub.remove(c)
				return
			}
		}
	}
}

// readPump handles inbound frames until the connection fails.
func (s *Server) readPump(c *client) {
	defer s.hub.remove(c)

	pongWait := 2 * s.config.PingInterval
	c.conn.SetReadLimit(maxFrameSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.hub.reportError(err)
				s.logger.Warn("stream closed", "code", "T060", "remote", c.remote, "error", err)
			}
			return
		}
		c.conn.SetReadDeadline(time.Now().Add(pongWait))

		var f Frame
		if err := json.Unmarshal(data, &f); err != nil || f.Type != FrameDismiss || f.ID == "" {
			s.logger.Debug("ignoring client frame", "remote", c.remote, "frame", string(data))
			continue
		}
		if err := s.dismiss(f.ID); err != nil {
			s.logger.Warn("dismiss failed", "id", f.ID, "error", err)
		}
	}
}
