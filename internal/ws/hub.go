// Package ws implements the cache-invalidation fan-out: one hub per server
// process holds every live dashboard connection and pushes an event after
// each successful trip mutation. Delivery is best-effort with no replay; a
// client that misses an event recovers by reconnecting and refetching.
package ws

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	logrus "github.com/sirupsen/logrus"
)

// EventType names a trip mutation on the wire.
type EventType string

const (
	TripCreated EventType = "TRIP_CREATED"
	TripUpdated EventType = "TRIP_UPDATED"
	// TripDeleted is broadcast on cancel. The wire name predates the
	// soft-cancel semantics and is kept for client compatibility; no trip
	// row is ever deleted.
	TripDeleted EventType = "TRIP_DELETED"
)

// Hub owns the set of live connections. Construct one per process and inject
// it into the mutation handlers; Register/Unregister are driven by the
// WebSocket endpoint's connection lifecycle.
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]bool)}
}

// Register adds a newly upgraded connection to the live set.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = true
	logrus.WithField("conn_ptr", fmt.Sprintf("%p", conn)).Info("WebSocket client registered.")
}

// Unregister removes a connection. Safe to call for connections already gone.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
	logrus.WithField("conn_ptr", fmt.Sprintf("%p", conn)).Info("WebSocket client unregistered.")
}

// ClientCount returns the number of live connections.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Broadcast serializes {type, data} once and writes it to every live
// connection. Writes happen under the hub lock, so concurrent broadcasts go
// out in the order their mutations completed. A failed write unregisters
// that one connection and never affects the others or the caller: the
// triggering HTTP request has already succeeded by the time this runs.
func (h *Hub) Broadcast(event EventType, data interface{}) {
	msg, err := json.Marshal(struct {
		Type EventType   `json:"type"`
		Data interface{} `json:"data"`
	}{Type: event, Data: data})
	if err != nil {
		logrus.WithError(err).WithField("event", event).Error("Failed to serialize broadcast payload.")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logrus.WithField("conn_ptr", fmt.Sprintf("%p", conn)).Info("Client connection closed during broadcast, unregistering.")
			} else {
				logrus.WithError(err).WithField("conn_ptr", fmt.Sprintf("%p", conn)).Warn("Failed to send broadcast message to client, unregistering.")
			}
			conn.Close()
			delete(h.conns, conn)
		}
	}
}
