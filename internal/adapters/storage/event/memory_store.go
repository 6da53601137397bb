package event

import (
	"context"

	"churchportal/internal/adapters/storage/memstore"
	domain "churchportal/internal/domain/event"
)

// MemoryStore implements Store in process memory.
type MemoryStore struct {
	items *memstore.Collection[domain.Event]
}

// NewMemoryStore creates an empty MemoryStore. New events go to the front.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: memstore.New(func(e domain.Event) string { return e.ID }, memstore.Front),
	}
}

// List returns all events in stored order.
func (s *MemoryStore) List(_ context.Context) ([]domain.Event, error) {
	return s.items.List(), nil
}

// GetByID retrieves an event by ID.
// PRE: id is non-empty
// POST: Returns the entity or storage.ErrNotFound
func (s *MemoryStore) GetByID(_ context.Context, id string) (domain.Event, error) {
	return s.items.Get(id)
}

// Insert adds an event at the front of the feed.
// PRE: entity has been validated and carries a fresh id
func (s *MemoryStore) Insert(_ context.Context, e domain.Event) error {
	return s.items.Insert(e)
}

// Replace overwrites an existing event in place.
// POST: Returns storage.ErrNotFound if the id is unknown
func (s *MemoryStore) Replace(_ context.Context, e domain.Event) error {
	return s.items.Replace(e)
}

// Delete removes an event by ID.
// POST: Returns false without error when nothing matched
func (s *MemoryStore) Delete(_ context.Context, id string) (bool, error) {
	return s.items.Delete(id), nil
}

// Update applies fn to an event under the collection's write lock.
// POST: Returns the stored event, storage.ErrNotFound, or fn's error with nothing written
func (s *MemoryStore) Update(_ context.Context, id string, fn func(*domain.Event) error) (domain.Event, error) {
	return s.items.Update(id, fn)
}
