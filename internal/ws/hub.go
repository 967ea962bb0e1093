// Package ws implements the live-update side of the API: a per-channel
// connection registry (Hub) and the admission handler (Gate) that upgrades
// HTTP requests into registry members. Two hubs exist at runtime, one for
// menu updates and one for order updates; they are created in main and
// injected into the handlers that publish events.
package ws

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Conn is the transport surface the hub needs from a member. It is
// satisfied by *websocket.Conn and by fakes in tests.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Hub tracks the currently admitted connections of one broadcast channel
// and fans messages out to them. Membership is owned exclusively by the
// hub and guarded by a mutex; admit, evict and broadcast may race freely
// from handler goroutines. Membership is unbounded and has no idle
// timeout: a member lives until it disconnects or a write to it fails.
type Hub struct {
	name string

	mu    sync.Mutex
	conns []Conn
}

// NewHub creates an empty registry for the named channel.
func NewHub(name string) *Hub {
	return &Hub{name: name}
}

// Name returns the channel name the hub was created for.
func (h *Hub) Name() string { return h.name }

// Admit appends a connection to the membership set.
func (h *Hub) Admit(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns = append(h.conns, c)
}

// Evict removes a connection. Evicting a connection that is not a member
// is a no-op, so disconnect paths and failed-write paths may both call it.
func (h *Hub) Evict(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, m := range h.conns {
		if m == c {
			h.conns = append(h.conns[:i], h.conns[i+1:]...)
			return
		}
	}
}

// Count returns the current number of members.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Broadcast delivers data to every current member except exclude (pass nil
// to reach everyone). Members are visited in admission order, based on a
// snapshot taken at the instant of the call; connections admitted or
// evicted while the fan-out runs may or may not be reached. A member whose
// write fails is closed best-effort and evicted, and delivery continues
// with the remaining members — one dead client never blocks the channel.
func (h *Hub) Broadcast(data []byte, exclude Conn) {
	h.mu.Lock()
	snapshot := make([]Conn, len(h.conns))
	copy(snapshot, h.conns)
	h.mu.Unlock()

	for _, m := range snapshot {
		if m == exclude {
			continue
		}
		if err := m.WriteMessage(websocket.TextMessage, data); err != nil {
			_ = m.Close()
			h.Evict(m)
		}
	}
}

// CloseAll closes and removes every member. Used on shutdown.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	conns := h.conns
	h.conns = nil
	h.mu.Unlock()
	for _, m := range conns {
		_ = m.Close()
	}
}
