package sermon

import (
	"context"

	domain "churchportal/internal/domain/sermon"
)

// Store persists Sermon state as a newest-first library.
type Store interface {
	List(ctx context.Context) ([]domain.Sermon, error)
	GetByID(ctx context.Context, id string) (domain.Sermon, error)
	Insert(ctx context.Context, s domain.Sermon) error
	Replace(ctx context.Context, s domain.Sermon) error
	Delete(ctx context.Context, id string) (bool, error)
	// Update applies fn to the stored sermon atomically; fn's error aborts the write.
	Update(ctx context.Context, id string, fn func(*domain.Sermon) error) (domain.Sermon, error)
}
