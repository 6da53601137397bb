package projections

import (
	"context"

	"churchportal/internal/domain/livestream"
)

// ChatHistory is how many recent chat lines the live view shows.
const ChatHistory = 50

// LiveDeps holds dependencies for QueryLive.
type LiveDeps struct {
	LiveStore LiveStore
}

// LiveResult is the stream status with recent chat.
type LiveResult struct {
	Stream   livestream.Stream        `json:"stream"`
	Messages []livestream.ChatMessage `json:"messages"`
}

// QueryLive returns the broadcast state and the last ChatHistory messages, oldest first.
func QueryLive(ctx context.Context, deps LiveDeps) (LiveResult, error) {
	st, err := deps.LiveStore.Stream(ctx)
	if err != nil {
		return LiveResult{}, err
	}
	msgs, err := deps.LiveStore.Messages(ctx, ChatHistory)
	if err != nil {
		return LiveResult{}, err
	}
	return LiveResult{Stream: st, Messages: msgs}, nil
}
