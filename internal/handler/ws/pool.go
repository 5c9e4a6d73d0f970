package ws

import (
	"log"
	"sync"
)

// Pool tracks every open connection server-wide, registered session or not.
// It backs the fan-out broadcast utility and is independent of the session
// registry's per-session targeting.
type Pool struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

// NewPool returns an empty connection pool.
func NewPool() *Pool {
	return &Pool{clients: make(map[*Client]struct{})}
}

func (p *Pool) add(c *Client) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.clients[c] = struct{}{}
}

func (p *Pool) remove(c *Client) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.clients, c)
}

// Len reports the number of tracked connections.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.clients)
}

// Broadcast writes payload to every connection whose transport is open at
// call time, silently skipping the rest. A connection closing mid-broadcast
// just surfaces a send error that is logged and skipped. Returns the number
// of successful deliveries.
func (p *Pool) Broadcast(payload any) int {
	p.mu.RLock()
	clients := make([]*Client, 0, len(p.clients))
	for c := range p.clients {
		clients = append(clients, c)
	}
	p.mu.RUnlock()

	delivered := 0
	for _, c := range clients {
		if !c.Open() {
			continue
		}
		if err := c.Send(payload); err != nil {
			log.Printf("[ws] broadcast skipping connection: %v", err)
			continue
		}
		delivered++
	}
	return delivered
}
