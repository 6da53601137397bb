package treasury

import (
	"context"
	"errors"

	"churchportal/internal/adapters/storage"
	"churchportal/internal/adapters/storage/memstore"
	domain "churchportal/internal/domain/treasury"
)

// MemoryStore implements Store in process memory.
type MemoryStore struct {
	contributions *memstore.Collection[domain.Contribution]
	budgets       *memstore.Collection[domain.Budget]
	reports       *memstore.Collection[domain.Report]
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		contributions: memstore.New(func(c domain.Contribution) string { return c.ID }, memstore.Front),
		budgets:       memstore.New(func(b domain.Budget) string { return b.ID }, memstore.Back),
		reports:       memstore.New(func(r domain.Report) string { return r.ID }, memstore.Front),
	}
}

func (s *MemoryStore) ListContributions(_ context.Context) ([]domain.Contribution, error) {
	return s.contributions.List(), nil
}

func (s *MemoryStore) AddContribution(_ context.Context, c domain.Contribution) error {
	return s.contributions.Insert(c)
}

func (s *MemoryStore) ListBudgets(_ context.Context) ([]domain.Budget, error) {
	return s.budgets.List(), nil
}

// SaveBudget inserts a budget or replaces the one with the same id.
func (s *MemoryStore) SaveBudget(_ context.Context, b domain.Budget) error {
	err := s.budgets.Replace(b)
	if errors.Is(err, storage.ErrNotFound) {
		return s.budgets.Insert(b)
	}
	return err
}

func (s *MemoryStore) ListReports(_ context.Context) ([]domain.Report, error) {
	return s.reports.List(), nil
}

func (s *MemoryStore) AddReport(_ context.Context, r domain.Report) error {
	return s.reports.Insert(r)
}
