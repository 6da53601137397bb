package department

import (
	"context"

	domain "churchportal/internal/domain/department"
)

// Store persists Department state as an append-order catalog.
type Store interface {
	List(ctx context.Context) ([]domain.Department, error)
	GetByID(ctx context.Context, id string) (domain.Department, error)
	Insert(ctx context.Context, d domain.Department) error
	Replace(ctx context.Context, d domain.Department) error
	Delete(ctx context.Context, id string) (bool, error)
	// Update applies fn to the stored department atomically; fn's error aborts the write.
	Update(ctx context.Context, id string, fn func(*domain.Department) error) (domain.Department, error)
}
