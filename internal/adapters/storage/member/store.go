package member

import (
	"context"

	domain "churchportal/internal/domain/member"
)

// Store persists Member state as an append-order directory.
type Store interface {
	List(ctx context.Context) ([]domain.Member, error)
	GetByID(ctx context.Context, id string) (domain.Member, error)
	Insert(ctx context.Context, m domain.Member) error
	Replace(ctx context.Context, m domain.Member) error
	Delete(ctx context.Context, id string) (bool, error)
	// Update applies fn to the stored member atomically; fn's error aborts the write.
	Update(ctx context.Context, id string, fn func(*domain.Member) error) (domain.Member, error)
}
