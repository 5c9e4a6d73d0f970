package history

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/harborchat/backend/internal/model/chat"
)

// MemoryStore implements Store with an in-memory map, suitable for a single
// process. Transcripts are keyed by device id, not session id, so they
// survive reconnects.
type MemoryStore struct {
	mu       sync.RWMutex
	messages map[string][]chat.Message
}

// NewMemoryStore bootstraps the in-memory history store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{messages: make(map[string][]chat.Message)}
}

// Append stores one turn for the device and returns the stored record.
func (s *MemoryStore) Append(_ context.Context, deviceID, content string) (chat.Message, error) {
	if deviceID == "" {
		return chat.Message{}, ErrDeviceRequired
	}

	msg := chat.Message{
		ID:        uuid.NewString(),
		DeviceID:  deviceID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.messages[deviceID] = append(s.messages[deviceID], msg)
	s.mu.Unlock()

	return msg, nil
}

// History returns the device's transcript in submission order. A device
// with no stored turns gets an empty slice, not an error.
func (s *MemoryStore) History(_ context.Context, deviceID string) ([]chat.Message, error) {
	if deviceID == "" {
		return nil, ErrDeviceRequired
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := s.messages[deviceID]
	copied := make([]chat.Message, len(messages))
	copy(copied, messages)
	return copied, nil
}
