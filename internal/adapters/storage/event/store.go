package event

import (
	"context"

	domain "churchportal/internal/domain/event"
)

// Store persists Event state as a newest-first feed.
type Store interface {
	List(ctx context.Context) ([]domain.Event, error)
	GetByID(ctx context.Context, id string) (domain.Event, error)
	Insert(ctx context.Context, e domain.Event) error
	Replace(ctx context.Context, e domain.Event) error
	Delete(ctx context.Context, id string) (bool, error)
	// Update applies fn to the stored event atomically; fn's error aborts the write.
	Update(ctx context.Context, id string, fn func(*domain.Event) error) (domain.Event, error)
}
