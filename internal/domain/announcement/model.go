package announcement

import (
	"time"

	"churchportal/internal/domain/validation"
)

// DefaultAuthor is recorded when an announcement is created without an author.
const DefaultAuthor = "Current User"

// Max length constants for user-editable fields.
const (
	MaxTitleLength   = 200
	MaxContentLength = 10000
	MaxAuthorLength  = 100
)

// Domain errors
var (
	ErrEmptyTitle      = validation.New("title", "announcement title cannot be empty")
	ErrTitleTooLong    = validation.New("title", "announcement title cannot exceed 200 characters")
	ErrEmptyContent    = validation.New("content", "announcement content cannot be empty")
	ErrContentTooLong  = validation.New("content", "announcement content cannot exceed 10000 characters")
	ErrAuthorTooLong   = validation.New("author", "announcement author cannot exceed 100 characters")
	ErrMissingCreateAt = validation.New("created_at", "announcement created_at is required")
)

// Announcement is a news item shown on the home page and dashboard feed.
// Content supports Markdown formatting.
type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// Patch carries the fields a caller wants to change. Nil fields are left as they are.
type Patch struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Author  *string `json:"author,omitempty"`
}

// Validate checks if the Announcement has valid data.
// PRE: Announcement struct is populated
// POST: Returns nil if valid, a *validation.Error otherwise
func (a *Announcement) Validate() error {
	if validation.Blank(a.Title) {
		return ErrEmptyTitle
	}
	if len(a.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if validation.Blank(a.Content) {
		return ErrEmptyContent
	}
	if len(a.Content) > MaxContentLength {
		return ErrContentTooLong
	}
	if len(a.Author) > MaxAuthorLength {
		return ErrAuthorTooLong
	}
	if a.CreatedAt.IsZero() {
		return ErrMissingCreateAt
	}
	return nil
}

// ApplyDefaults fills the fields a new announcement may omit.
// POST: Author is non-empty; CreatedAt is set to now when zero
func (a *Announcement) ApplyDefaults(now time.Time) {
	if validation.Blank(a.Author) {
		a.Author = DefaultAuthor
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
}

// Apply overlays p onto the announcement.
// INVARIANT: ID and CreatedAt are never changed
func (a *Announcement) Apply(p Patch) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Content != nil {
		a.Content = *p.Content
	}
	if p.Author != nil {
		a.Author = *p.Author
	}
}
