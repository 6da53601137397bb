package announcement_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"churchportal/internal/domain/announcement"
)

var created = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

// TestAnnouncementValidation tests validation of Announcement.
func TestAnnouncementValidation(t *testing.T) {
	tests := []struct {
		name    string
		a       announcement.Announcement
		wantErr error
	}{
		{
			name: "valid",
			a:    announcement.Announcement{ID: "1", Title: "Sabbath Service Changes", Content: "Starts at 10:30", Author: "Pastor Johnson", CreatedAt: created},
		},
		{
			name:    "blank title",
			a:       announcement.Announcement{ID: "1", Title: "  ", Content: "x", CreatedAt: created},
			wantErr: announcement.ErrEmptyTitle,
		},
		{
			name:    "title too long",
			a:       announcement.Announcement{ID: "1", Title: strings.Repeat("a", 201), Content: "x", CreatedAt: created},
			wantErr: announcement.ErrTitleTooLong,
		},
		{
			name:    "empty content",
			a:       announcement.Announcement{ID: "1", Title: "t", CreatedAt: created},
			wantErr: announcement.ErrEmptyContent,
		},
		{
			name:    "missing created_at",
			a:       announcement.Announcement{ID: "1", Title: "t", Content: "c"},
			wantErr: announcement.ErrMissingCreateAt,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.a.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestApplyDefaults fills author and creation time only when missing.
func TestApplyDefaults(t *testing.T) {
	now := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)

	a := announcement.Announcement{Title: "t", Content: "c"}
	a.ApplyDefaults(now)
	if a.Author != announcement.DefaultAuthor {
		t.Errorf("Author = %q, want %q", a.Author, announcement.DefaultAuthor)
	}
	if !a.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want %v", a.CreatedAt, now)
	}

	b := announcement.Announcement{Title: "t", Content: "c", Author: "Elder Smith", CreatedAt: created}
	b.ApplyDefaults(now)
	if b.Author != "Elder Smith" || !b.CreatedAt.Equal(created) {
		t.Errorf("defaults overwrote supplied values: %+v", b)
	}
}

// TestApply overlays only the supplied fields.
func TestApply(t *testing.T) {
	a := announcement.Announcement{ID: "1", Title: "Old", Content: "Body", Author: "Pastor Johnson", CreatedAt: created}
	title := "New"
	a.Apply(announcement.Patch{Title: &title})

	if a.ID != "1" {
		t.Errorf("ID changed to %q", a.ID)
	}
	if a.Title != "New" {
		t.Errorf("Title = %q, want New", a.Title)
	}
	if a.Content != "Body" || a.Author != "Pastor Johnson" {
		t.Errorf("untouched fields changed: %+v", a)
	}
}
