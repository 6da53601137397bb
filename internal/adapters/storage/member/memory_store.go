package member

import (
	"context"

	"churchportal/internal/adapters/storage/memstore"
	domain "churchportal/internal/domain/member"
)

// MemoryStore implements Store in process memory.
type MemoryStore struct {
	items *memstore.Collection[domain.Member]
}

// NewMemoryStore creates an empty MemoryStore. New members are appended.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: memstore.New(func(m domain.Member) string { return m.ID }, memstore.Back),
	}
}

// List returns all members in insertion order.
func (s *MemoryStore) List(_ context.Context) ([]domain.Member, error) {
	return s.items.List(), nil
}

// GetByID retrieves a member by ID.
// POST: Returns the entity or storage.ErrNotFound
func (s *MemoryStore) GetByID(_ context.Context, id string) (domain.Member, error) {
	return s.items.Get(id)
}

// Insert appends a member.
func (s *MemoryStore) Insert(_ context.Context, m domain.Member) error {
	return s.items.Insert(m)
}

// Replace overwrites an existing member in place.
func (s *MemoryStore) Replace(_ context.Context, m domain.Member) error {
	return s.items.Replace(m)
}

// Delete removes a member by ID.
func (s *MemoryStore) Delete(_ context.Context, id string) (bool, error) {
	return s.items.Delete(id), nil
}

// Update applies fn to a member under the collection's write lock.
// POST: Returns the stored member, storage.ErrNotFound, or fn's error with nothing written
func (s *MemoryStore) Update(_ context.Context, id string, fn func(*domain.Member) error) (domain.Member, error) {
	return s.items.Update(id, fn)
}
