package livestream

import (
	"errors"
	"time"

	"churchportal/internal/domain/validation"
)

// DefaultTitle is shown while no service title has been set.
const DefaultTitle = "Sabbath Service - 11:00 AM"

// Max length constants for user-editable fields.
const (
	MaxTitleLength   = 200
	MaxMessageLength = 500
)

// Domain errors
var (
	ErrStreamOffline  = errors.New("chat is only open while the stream is live")
	ErrAlreadyLive    = errors.New("stream is already live")
	ErrAlreadyOffline = errors.New("stream is not live")
	ErrEmptyMessage   = validation.New("message", "chat message cannot be empty")
	ErrMessageTooLong = validation.New("message", "chat message cannot exceed 500 characters")
	ErrTitleTooLong   = validation.New("title", "stream title cannot exceed 200 characters")
	ErrMissingAuthor  = validation.New("user", "chat message needs an author")
)

// Stream is the state of the church's live broadcast.
type Stream struct {
	Live      bool      `json:"live"`
	Title     string    `json:"title"`
	Viewers   int       `json:"viewers"`
	StartedAt time.Time `json:"started_at,omitzero"`
}

// ChatMessage is one line in the live chat.
type ChatMessage struct {
	ID     string    `json:"id"`
	User   string    `json:"user"`
	Text   string    `json:"message"`
	SentAt time.Time `json:"sent_at"`
}

// GoLive starts the broadcast.
// PRE: stream is offline
// POST: Live is true, StartedAt is now, Title is non-empty
func (s *Stream) GoLive(title string, now time.Time) error {
	if s.Live {
		return ErrAlreadyLive
	}
	if len(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if validation.Blank(title) {
		title = DefaultTitle
	}
	s.Live = true
	s.Title = title
	s.StartedAt = now
	return nil
}

// End stops the broadcast.
// PRE: stream is live
// POST: Live is false, Viewers is 0
func (s *Stream) End() error {
	if !s.Live {
		return ErrAlreadyOffline
	}
	s.Live = false
	s.Viewers = 0
	s.StartedAt = time.Time{}
	return nil
}

// Validate checks if the ChatMessage has valid data.
// PRE: ChatMessage struct is populated
// POST: Returns nil if valid, error otherwise
func (m *ChatMessage) Validate() error {
	if validation.Blank(m.User) {
		return ErrMissingAuthor
	}
	if validation.Blank(m.Text) {
		return ErrEmptyMessage
	}
	if len(m.Text) > MaxMessageLength {
		return ErrMessageTooLong
	}
	return nil
}
