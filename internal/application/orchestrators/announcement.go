package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"churchportal/internal/domain/announcement"
)

// AnnouncementStoreForOrchestrator defines the store interface needed by announcement orchestrators.
type AnnouncementStoreForOrchestrator interface {
	Insert(ctx context.Context, a announcement.Announcement) error
	// Update applies fn atomically; fn's error aborts the write.
	Update(ctx context.Context, id string, fn func(*announcement.Announcement) error) (announcement.Announcement, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// AnnouncementDeps holds dependencies for the announcement orchestrators.
type AnnouncementDeps struct {
	AnnouncementStore AnnouncementStoreForOrchestrator
	GenerateID        func() string
	Now               func() time.Time
	Observer          MutationObserver
}

// CreateAnnouncementInput carries input for the create announcement orchestrator.
type CreateAnnouncementInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

// ExecuteCreateAnnouncement publishes a new announcement at the top of the feed.
// PRE: Title and Content are non-empty
// POST: Announcement stored with generated ID; Author defaults to "Current User"; CreatedAt is now
func ExecuteCreateAnnouncement(ctx context.Context, input CreateAnnouncementInput, deps AnnouncementDeps) (announcement.Announcement, error) {
	a := announcement.Announcement{
		ID:      deps.GenerateID(),
		Title:   input.Title,
		Content: input.Content,
		Author:  input.Author,
	}
	a.ApplyDefaults(deps.Now())

	if err := a.Validate(); err != nil {
		return announcement.Announcement{}, err
	}
	if err := deps.AnnouncementStore.Insert(ctx, a); err != nil {
		return announcement.Announcement{}, err
	}

	observe(deps.Observer, "announcement", "create")
	slog.Info("announcement_event", "event", "announcement_created", "announcement_id", a.ID, "author", a.Author)
	return a, nil
}

// ExecuteUpdateAnnouncement overlays patch onto an existing announcement.
// PRE: id names an existing announcement
// POST: Returns the merged record; fields absent from patch are unchanged; storage.ErrNotFound if missing
func ExecuteUpdateAnnouncement(ctx context.Context, id string, patch announcement.Patch, deps AnnouncementDeps) (announcement.Announcement, error) {
	a, err := deps.AnnouncementStore.Update(ctx, id, func(cur *announcement.Announcement) error {
		cur.Apply(patch)
		return cur.Validate()
	})
	if err != nil {
		return announcement.Announcement{}, err
	}

	observe(deps.Observer, "announcement", "update")
	slog.Info("announcement_event", "event", "announcement_updated", "announcement_id", a.ID)
	return a, nil
}

// ExecuteDeleteAnnouncement removes an announcement.
// POST: No announcement has id; a missing id succeeds with Removed=false
func ExecuteDeleteAnnouncement(ctx context.Context, id string, deps AnnouncementDeps) (DeleteResult, error) {
	removed, err := deps.AnnouncementStore.Delete(ctx, id)
	if err != nil {
		return DeleteResult{}, err
	}
	if removed {
		observe(deps.Observer, "announcement", "delete")
		slog.Info("announcement_event", "event", "announcement_deleted", "announcement_id", id)
	}
	return DeleteResult{Message: deletedMessage, Removed: removed}, nil
}
