package announcement

import (
	"context"

	domain "churchportal/internal/domain/announcement"
)

// Store persists Announcement state as a newest-first feed.
type Store interface {
	List(ctx context.Context) ([]domain.Announcement, error)
	GetByID(ctx context.Context, id string) (domain.Announcement, error)
	Insert(ctx context.Context, a domain.Announcement) error
	Replace(ctx context.Context, a domain.Announcement) error
	Delete(ctx context.Context, id string) (bool, error)
	// Update applies fn to the stored announcement atomically; fn's error aborts the write.
	Update(ctx context.Context, id string, fn func(*domain.Announcement) error) (domain.Announcement, error)
}
