package livestream

import (
	"context"

	domain "churchportal/internal/domain/livestream"
)

// Store persists the broadcast state and its chat log.
type Store interface {
	Stream(ctx context.Context) (domain.Stream, error)
	UpdateStream(ctx context.Context, fn func(*domain.Stream) error) (domain.Stream, error)
	AppendMessage(ctx context.Context, m domain.ChatMessage) error
	// Messages returns the most recent limit messages, oldest first. limit <= 0 means all.
	Messages(ctx context.Context, limit int) ([]domain.ChatMessage, error)
}
