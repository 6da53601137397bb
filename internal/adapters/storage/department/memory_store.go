package department

import (
	"context"

	"churchportal/internal/adapters/storage/memstore"
	domain "churchportal/internal/domain/department"
)

// MemoryStore implements Store in process memory.
type MemoryStore struct {
	items *memstore.Collection[domain.Department]
}

// NewMemoryStore creates an empty MemoryStore. New departments are appended.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: memstore.New(func(d domain.Department) string { return d.ID }, memstore.Back),
	}
}

// List returns all departments in insertion order.
func (s *MemoryStore) List(_ context.Context) ([]domain.Department, error) {
	return s.items.List(), nil
}

// GetByID retrieves a department by ID.
// POST: Returns the entity or storage.ErrNotFound
func (s *MemoryStore) GetByID(_ context.Context, id string) (domain.Department, error) {
	return s.items.Get(id)
}

// Insert appends a department.
func (s *MemoryStore) Insert(_ context.Context, d domain.Department) error {
	return s.items.Insert(d)
}

// Replace overwrites an existing department in place.
func (s *MemoryStore) Replace(_ context.Context, d domain.Department) error {
	return s.items.Replace(d)
}

// Delete removes a department by ID.
func (s *MemoryStore) Delete(_ context.Context, id string) (bool, error) {
	return s.items.Delete(id), nil
}

// Update applies fn to a department under the collection's write lock.
// POST: Returns the stored department, storage.ErrNotFound, or fn's error with nothing written
func (s *MemoryStore) Update(_ context.Context, id string, fn func(*domain.Department) error) (domain.Department, error) {
	return s.items.Update(id, fn)
}
