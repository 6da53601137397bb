package sermon

import (
	"context"

	"churchportal/internal/adapters/storage/memstore"
	domain "churchportal/internal/domain/sermon"
)

// MemoryStore implements Store in process memory.
type MemoryStore struct {
	items *memstore.Collection[domain.Sermon]
}

// NewMemoryStore creates an empty MemoryStore. New sermons go to the front.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: memstore.New(func(s domain.Sermon) string { return s.ID }, memstore.Front),
	}
}

// List returns all sermons in stored order.
func (m *MemoryStore) List(_ context.Context) ([]domain.Sermon, error) {
	return m.items.List(), nil
}

// GetByID retrieves a sermon by ID.
// POST: Returns the entity or storage.ErrNotFound
func (m *MemoryStore) GetByID(_ context.Context, id string) (domain.Sermon, error) {
	return m.items.Get(id)
}

// Insert adds a sermon at the front of the library.
func (m *MemoryStore) Insert(_ context.Context, s domain.Sermon) error {
	return m.items.Insert(s)
}

// Replace overwrites an existing sermon in place.
func (m *MemoryStore) Replace(_ context.Context, s domain.Sermon) error {
	return m.items.Replace(s)
}

// Delete removes a sermon by ID.
func (m *MemoryStore) Delete(_ context.Context, id string) (bool, error) {
	return m.items.Delete(id), nil
}

// Update applies fn to a sermon under the collection's write lock.
// POST: Returns the stored sermon, storage.ErrNotFound, or fn's error with nothing written
func (m *MemoryStore) Update(_ context.Context, id string, fn func(*domain.Sermon) error) (domain.Sermon, error) {
	return m.items.Update(id, fn)
}
