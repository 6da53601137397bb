package orchestrators

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"churchportal/internal/domain/livestream"
)

// LiveStoreForOrchestrator defines the store interface needed by live stream orchestrators.
type LiveStoreForOrchestrator interface {
	Stream(ctx context.Context) (livestream.Stream, error)
	UpdateStream(ctx context.Context, fn func(*livestream.Stream) error) (livestream.Stream, error)
	AppendMessage(ctx context.Context, m livestream.ChatMessage) error
}

// LiveDeps holds dependencies for the live stream orchestrators.
type LiveDeps struct {
	LiveStore  LiveStoreForOrchestrator
	GenerateID func() string
	Now        func() time.Time
	Observer   MutationObserver
}

// SetStreamInput carries input for toggling the broadcast.
type SetStreamInput struct {
	Live  bool   `json:"live"`
	Title string `json:"title"`
}

// ExecuteSetStream starts or ends the broadcast.
// PRE: caller may manage content
// POST: Stream.Live == input.Live; ErrAlreadyLive / ErrAlreadyOffline when no change was needed
func ExecuteSetStream(ctx context.Context, input SetStreamInput, deps LiveDeps) (livestream.Stream, error) {
	now := deps.Now()
	st, err := deps.LiveStore.UpdateStream(ctx, func(s *livestream.Stream) error {
		if input.Live {
			return s.GoLive(input.Title, now)
		}
		return s.End()
	})
	if err != nil {
		return livestream.Stream{}, err
	}

	op := "end"
	if st.Live {
		op = "go_live"
	}
	observe(deps.Observer, "livestream", op)
	slog.Info("livestream_event", "event", "stream_"+op, "title", st.Title)
	return st, nil
}

// PostChatInput carries input for posting a chat message.
type PostChatInput struct {
	Author string
	Text   string `json:"message"`
}

// ExecutePostChat appends a chat line from the signed-in user.
// PRE: stream is live; Author is the user's full name
// POST: message stored with a time-ordered ID; surrounding whitespace trimmed
func ExecutePostChat(ctx context.Context, input PostChatInput, deps LiveDeps) (livestream.ChatMessage, error) {
	st, err := deps.LiveStore.Stream(ctx)
	if err != nil {
		return livestream.ChatMessage{}, err
	}
	if !st.Live {
		return livestream.ChatMessage{}, livestream.ErrStreamOffline
	}

	m := livestream.ChatMessage{
		ID:     deps.GenerateID(),
		User:   input.Author,
		Text:   strings.TrimSpace(input.Text),
		SentAt: deps.Now(),
	}
	if err := m.Validate(); err != nil {
		return livestream.ChatMessage{}, err
	}
	if err := deps.LiveStore.AppendMessage(ctx, m); err != nil {
		return livestream.ChatMessage{}, err
	}

	observe(deps.Observer, "chat", "create")
	slog.Info("livestream_event", "event", "chat_posted", "message_id", m.ID, "user", m.User)
	return m, nil
}
