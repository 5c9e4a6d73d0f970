package session

import (
	"sync"

	"github.com/harborchat/backend/internal/model/chat"
)

// Conn is the send half of a live connection, owned exclusively by the
// session registered under it.
type Conn interface {
	Send(v any) error
}

// Entry pairs a session record with its connection handle.
type Entry struct {
	Session chat.Session
	Conn    Conn
}

// Registry maps session ids to live entries. It is constructed once at
// server start and injected into the connection handler; an entry is only
// ever written or removed by its own connection's lifecycle events, and a
// lookup miss is the routing layer's sole rejection signal.
type Registry interface {
	Insert(Entry)
	Get(sessionID string) (Entry, bool)
	Remove(sessionID string)
	Len() int
}

// MemoryRegistry implements Registry with a mutex-guarded map.
type MemoryRegistry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemoryRegistry returns an empty registry ready for use.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{entries: make(map[string]Entry)}
}

// Insert records a newly connected session.
func (r *MemoryRegistry) Insert(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.Session.SessionID] = entry
}

// Get retrieves the live entry for a session id.
func (r *MemoryRegistry) Get(sessionID string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[sessionID]
	return entry, ok
}

// Remove drops a session on disconnect. Removing an absent id is a no-op.
func (r *MemoryRegistry) Remove(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, sessionID)
}

// Len reports the number of live sessions.
func (r *MemoryRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
