package orchestrators

import (
	"context"
	"log/slog"

	"churchportal/internal/domain/sermon"
)

// SermonStoreForOrchestrator defines the store interface needed by sermon orchestrators.
type SermonStoreForOrchestrator interface {
	Insert(ctx context.Context, s sermon.Sermon) error
	// Update applies fn atomically; fn's error aborts the write.
	Update(ctx context.Context, id string, fn func(*sermon.Sermon) error) (sermon.Sermon, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// SermonDeps holds dependencies for the sermon orchestrators.
type SermonDeps struct {
	SermonStore SermonStoreForOrchestrator
	GenerateID  func() string
	Observer    MutationObserver
}

// CreateSermonInput carries input for the create sermon orchestrator.
type CreateSermonInput struct {
	Title      string `json:"title"`
	Speaker    string `json:"speaker"`
	Scripture  string `json:"scripture"`
	SermonDate string `json:"sermon_date"`
	AudioURL   string `json:"audio_url"`
	VideoURL   string `json:"video_url"`
}

// ExecuteCreateSermon adds a sermon to the top of the library.
// PRE: Title and Speaker are non-empty
// POST: Sermon stored with generated ID
func ExecuteCreateSermon(ctx context.Context, input CreateSermonInput, deps SermonDeps) (sermon.Sermon, error) {
	s := sermon.Sermon{
		ID:         deps.GenerateID(),
		Title:      input.Title,
		Speaker:    input.Speaker,
		Scripture:  input.Scripture,
		SermonDate: input.SermonDate,
		AudioURL:   input.AudioURL,
		VideoURL:   input.VideoURL,
	}
	if err := s.Validate(); err != nil {
		return sermon.Sermon{}, err
	}
	if err := deps.SermonStore.Insert(ctx, s); err != nil {
		return sermon.Sermon{}, err
	}

	observe(deps.Observer, "sermon", "create")
	slog.Info("sermon_event", "event", "sermon_created", "sermon_id", s.ID, "speaker", s.Speaker)
	return s, nil
}

// ExecuteUpdateSermon overlays patch onto an existing sermon.
// PRE: id names an existing sermon
// POST: Returns the merged record; storage.ErrNotFound if missing
func ExecuteUpdateSermon(ctx context.Context, id string, patch sermon.Patch, deps SermonDeps) (sermon.Sermon, error) {
	s, err := deps.SermonStore.Update(ctx, id, func(cur *sermon.Sermon) error {
		cur.Apply(patch)
		return cur.Validate()
	})
	if err != nil {
		return sermon.Sermon{}, err
	}

	observe(deps.Observer, "sermon", "update")
	slog.Info("sermon_event", "event", "sermon_updated", "sermon_id", s.ID)
	return s, nil
}

// ExecuteDeleteSermon removes a sermon.
// POST: No sermon has id; a missing id succeeds with Removed=false
func ExecuteDeleteSermon(ctx context.Context, id string, deps SermonDeps) (DeleteResult, error) {
	removed, err := deps.SermonStore.Delete(ctx, id)
	if err != nil {
		return DeleteResult{}, err
	}
	if removed {
		observe(deps.Observer, "sermon", "delete")
		slog.Info("sermon_event", "event", "sermon_deleted", "sermon_id", id)
	}
	return DeleteResult{Message: deletedMessage, Removed: removed}, nil
}
