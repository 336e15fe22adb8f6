package session

import (
	"sync"

	"chatcore/internal/metrics"
)

// Hub tracks live websocket connections per user. Several connections for one
// user (multiple tabs) are expected and fine: each receives the same events
// redundantly, and handling is idempotent invalidation.
type Hub struct {
	mu    sync.RWMutex
	conns map[string]map[*Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{conns: make(map[string]map[*Conn]struct{})}
}

// Add registers a connection and reports whether it is the user's first.
func (h *Hub) Add(c *Conn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.conns[c.UserID]
	if !ok {
		set = make(map[*Conn]struct{})
		h.conns[c.UserID] = set
	}
	set[c] = struct{}{}
	metrics.OnlineConns.Inc()
	return len(set) == 1
}

// Remove deregisters a connection and reports whether it was the user's last.
func (h *Hub) Remove(c *Conn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.conns[c.UserID]
	if !ok {
		return false
	}
	if _, member := set[c]; !member {
		return false
	}
	delete(set, c)
	metrics.OnlineConns.Dec()
	if len(set) == 0 {
		delete(h.conns, c.UserID)
		return true
	}
	return false
}

func (h *Hub) CountFor(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[userID])
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, set := range h.conns {
		n += len(set)
	}
	return n
}
