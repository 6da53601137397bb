package account

import (
	"context"
	"strings"

	"churchportal/internal/adapters/storage"
	"churchportal/internal/adapters/storage/memstore"
	domain "churchportal/internal/domain/account"
)

// MemoryStore implements Store in process memory.
type MemoryStore struct {
	items *memstore.Collection[domain.Account]
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: memstore.New(func(a domain.Account) string { return a.ID }, memstore.Back),
	}
}

// GetByID retrieves an Account by its ID.
// POST: Returns the entity or storage.ErrNotFound
func (s *MemoryStore) GetByID(_ context.Context, id string) (domain.Account, error) {
	return s.items.Get(id)
}

// GetByEmail retrieves an Account by email, ignoring case.
// POST: Returns the entity or storage.ErrNotFound
func (s *MemoryStore) GetByEmail(_ context.Context, email string) (domain.Account, error) {
	for _, a := range s.items.List() {
		if strings.EqualFold(a.Email, email) {
			return a, nil
		}
	}
	return domain.Account{}, storage.ErrNotFound
}

// Save inserts or replaces an Account.
// POST: Returns storage.ErrDuplicateID if another account holds the email
func (s *MemoryStore) Save(ctx context.Context, entity domain.Account) error {
	if other, err := s.GetByEmail(ctx, entity.Email); err == nil && other.ID != entity.ID {
		return storage.ErrDuplicateID
	}
	if err := s.items.Replace(entity); err == nil {
		return nil
	}
	return s.items.Insert(entity)
}

// List retrieves Accounts in creation order, optionally filtered by role.
func (s *MemoryStore) List(_ context.Context, filter ListFilter) ([]domain.Account, error) {
	out := []domain.Account{}
	for _, a := range s.items.List() {
		if filter.Role == "" || a.Role == filter.Role {
			out = append(out, a)
		}
	}
	return out, nil
}

// Count returns the total number of accounts.
func (s *MemoryStore) Count(_ context.Context) (int, error) {
	return s.items.Len(), nil
}
