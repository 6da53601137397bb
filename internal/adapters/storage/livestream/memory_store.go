package livestream

import (
	"context"
	"sync"

	"churchportal/internal/adapters/storage/memstore"
	domain "churchportal/internal/domain/livestream"
)

// MemoryStore implements Store in process memory.
type MemoryStore struct {
	mu     sync.Mutex
	stream domain.Stream
	chat   *memstore.Collection[domain.ChatMessage]
}

// NewMemoryStore creates a MemoryStore holding an offline stream and an empty chat.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		chat: memstore.New(func(m domain.ChatMessage) string { return m.ID }, memstore.Back),
	}
}

// Stream returns the current broadcast state.
func (s *MemoryStore) Stream(_ context.Context) (domain.Stream, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stream, nil
}

// UpdateStream applies fn to the broadcast state under the lock.
// POST: state is unchanged when fn returns an error
func (s *MemoryStore) UpdateStream(_ context.Context, fn func(*domain.Stream) error) (domain.Stream, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.stream
	if err := fn(&next); err != nil {
		return domain.Stream{}, err
	}
	s.stream = next
	return next, nil
}

// AppendMessage adds a chat message at the end of the log.
func (s *MemoryStore) AppendMessage(_ context.Context, m domain.ChatMessage) error {
	return s.chat.Insert(m)
}

// Messages returns the newest limit messages in send order.
func (s *MemoryStore) Messages(_ context.Context, limit int) ([]domain.ChatMessage, error) {
	all := s.chat.List()
	if limit > 0 && len(all) > limit {
		all = all[len(all)-limit:]
	}
	return all, nil
}
