package websocket

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/vikasavnish/marketpulse/internal/models"
)

// Hub maintains the set of active dashboard clients and broadcasts messages
type Hub struct {
	mu sync.Mutex

	// Registered clients
	connections map[*websocket.Conn]bool

	// Messages to be broadcast to all connected clients
	broadcast chan models.Message

	// Upgrader for HTTP connections to WebSocket
	upgrader websocket.Upgrader

	logger *zap.Logger
}

// NewHub creates a new hub for managing WebSocket connections
func NewHub(logger *zap.Logger) *Hub {
	upgrader := websocket.Upgrader{
		// Allow all origins for WebSocket connections
		CheckOrigin: func(r *http.Request) bool { return true },
	}

	return &Hub{
		connections: make(map[*websocket.Conn]bool),
		broadcast:   make(chan models.Message),
		upgrader:    upgrader,
		logger:      logger,
	}
}

// Run delivers broadcast messages until ctx is cancelled, then closes every
// client connection.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case msg := <-h.broadcast:
			h.send(msg)
		case <-ctx.Done():
			h.closeAll()
			return
		}
	}
}

func (h *Hub) send(msg models.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.connections {
		if err := client.WriteJSON(msg); err != nil {
			h.logger.Warn("dropping websocket client", zap.Error(err))
			client.Close()
			delete(h.connections, client)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.connections {
		client.Close()
		delete(h.connections, client)
	}
}

// HandleWebSocket upgrades an HTTP connection to WebSocket
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.mu.Lock()
	h.connections[ws] = true
	h.mu.Unlock()

	// Read messages from the client (to keep the connection alive)
	go func() {
		defer ws.Close()
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				h.mu.Lock()
				delete(h.connections, ws)
				h.mu.Unlock()
				return
			}
		}
	}()
}

// Broadcast hands msg to Run. It blocks until Run accepts it or ctx ends.
func (h *Hub) Broadcast(ctx context.Context, msg models.Message) error {
	select {
	case h.broadcast <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ClientCount reports how many clients are connected
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.connections)
}
