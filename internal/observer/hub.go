package observer

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// Hub fans snapshots out to connected observers. A client whose queue is full
// misses the message instead of stalling the simulation.
type Hub struct {
	queue int

	mu       sync.Mutex
	clients  map[*client]struct{}
	baseline []byte

	dropped atomic.Uint64
}

type client struct {
	send chan []byte
}

// NewHub creates a hub with queue buffered messages per client.
func NewHub(queue int) *Hub {
	if queue <= 0 {
		queue = 1
	}
	return &Hub{queue: queue, clients: make(map[*client]struct{})}
}

// register adds a client and queues the last full snapshot for it.
func (h *Hub) register() *client {
	c := &client{send: make(chan []byte, h.queue)}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	if h.baseline != nil {
		c.send <- h.baseline
	}
	h.mu.Unlock()
	return c
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// Broadcast queues msg for every client.
func (h *Hub) Broadcast(msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			if n := h.dropped.Add(1); n%100 == 1 {
				slog.Warn("observer queue full, dropping snapshots", "dropped", n)
			}
		}
	}
}

// SetBaseline stores the snapshot new clients receive first.
func (h *Hub) SetBaseline(msg []byte) {
	h.mu.Lock()
	h.baseline = msg
	h.mu.Unlock()
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Dropped returns how many messages were discarded on full queues.
func (h *Hub) Dropped() uint64 { return h.dropped.Load() }

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}
