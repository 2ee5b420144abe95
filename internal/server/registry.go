package server

import (
	"sync"

	"snakearena/internal/world"
)

// registry tracks connected clients, adapted from the session registry
// this package's connection handling is grounded on. It is mutated only by
// the connection manager; the tick driver only reads it, once per tick, to
// fan out a broadcast.
type registry struct {
	mu      sync.RWMutex
	clients map[world.SnakeID]*Client
}

func newRegistry() *registry {
	return &registry{clients: make(map[world.SnakeID]*Client)}
}

func (r *registry) add(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[c.snakeID] = c
}

func (r *registry) remove(id world.SnakeID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clients, id)
}

// broadcast fans frame out to every connected client without blocking the
// caller on any one client's socket.
func (r *registry) broadcast(frame []byte) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.clients {
		c.Send(frame)
	}
}

func (r *registry) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}
