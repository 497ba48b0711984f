// Package notify pushes save/delete outcomes to the owner's open
// websocket sessions, mirroring the transient popup feedback of the
// web client.
package notify

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks one live connection per owner external id. A new
// connection for the same owner replaces the old one.
type Hub struct {
	connections map[string]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[string]*websocket.Conn),
	}
}

func (h *Hub) Register(ownerExternalID string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[ownerExternalID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[ownerExternalID] = conn
}

func (h *Hub) Unregister(ownerExternalID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[ownerExternalID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, ownerExternalID)
	}
}

// SendToOwner delivers one message; a write failure drops the
// connection. Returns false when the owner has no live socket.
func (h *Hub) SendToOwner(ownerExternalID string, message interface{}) bool {
	h.mutex.RLock()
	conn, exists := h.connections[ownerExternalID]
	h.mutex.RUnlock()

	if !exists || conn == nil {
		return false
	}

	if err := conn.WriteJSON(message); err != nil {
		h.Unregister(ownerExternalID)
		return false
	}

	return true
}

func (h *Hub) IsOnline(ownerExternalID string) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, exists := h.connections[ownerExternalID]
	return exists
}

func (h *Hub) OnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for ownerExternalID, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, ownerExternalID)
	}
}
