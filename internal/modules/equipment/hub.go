package equipment

import (
	"sync"

	"github.com/gorilla/websocket"

	"equipshare/internal/domain"
)

// Event is pushed to watchers whenever an item's availability or definition
// changes, so admin views can refresh without polling.
type Event struct {
	Event     string           `json:"event"`
	Equipment domain.Equipment `json:"equipment"`
}

type Hub struct {
	connections map[*websocket.Conn]bool
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[*websocket.Conn]bool),
	}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.connections[conn] = true
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, exists := h.connections[conn]; exists {
		_ = conn.Close()
		delete(h.connections, conn)
	}
}

// Publish fans the event out to every watcher. Connections that fail to
// accept the write are dropped.
func (h *Hub) Publish(evt Event) {
	h.mutex.RLock()
	conns := make([]*websocket.Conn, 0, len(h.connections))
	for conn := range h.connections {
		conns = append(conns, conn)
	}
	h.mutex.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(evt); err != nil {
			h.Unregister(conn)
		}
	}
}

func (h *Hub) WatcherCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.connections {
		_ = conn.Close()
		delete(h.connections, conn)
	}
}
