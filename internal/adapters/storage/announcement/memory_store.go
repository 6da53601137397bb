package announcement

import (
	"context"

	"churchportal/internal/adapters/storage/memstore"
	domain "churchportal/internal/domain/announcement"
)

// MemoryStore implements Store in process memory.
type MemoryStore struct {
	items *memstore.Collection[domain.Announcement]
}

// NewMemoryStore creates an empty MemoryStore. New announcements go to the front.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: memstore.New(func(a domain.Announcement) string { return a.ID }, memstore.Front),
	}
}

// List returns all announcements, newest first.
func (s *MemoryStore) List(_ context.Context) ([]domain.Announcement, error) {
	return s.items.List(), nil
}

// GetByID retrieves an announcement by ID.
// PRE: id is non-empty
// POST: Returns the entity or storage.ErrNotFound
func (s *MemoryStore) GetByID(_ context.Context, id string) (domain.Announcement, error) {
	return s.items.Get(id)
}

// Insert adds an announcement at the front of the feed.
// PRE: entity has been validated and carries a fresh id
func (s *MemoryStore) Insert(_ context.Context, a domain.Announcement) error {
	return s.items.Insert(a)
}

// Replace overwrites an existing announcement in place.
// POST: Returns storage.ErrNotFound if the id is unknown
func (s *MemoryStore) Replace(_ context.Context, a domain.Announcement) error {
	return s.items.Replace(a)
}

// Delete removes an announcement by ID.
// POST: Returns false without error when nothing matched
func (s *MemoryStore) Delete(_ context.Context, id string) (bool, error) {
	return s.items.Delete(id), nil
}

// Update applies fn to a announcement under the collection's write lock.
// POST: Returns the stored announcement, storage.ErrNotFound, or fn's error with nothing written
func (s *MemoryStore) Update(_ context.Context, id string, fn func(*domain.Announcement) error) (domain.Announcement, error) {
	return s.items.Update(id, fn)
}
