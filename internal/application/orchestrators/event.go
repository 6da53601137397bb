package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"churchportal/internal/domain/event"
)

// EventStoreForOrchestrator defines the store interface needed by event orchestrators.
type EventStoreForOrchestrator interface {
	Insert(ctx context.Context, e event.Event) error
	// Update applies fn atomically; fn's error aborts the write.
	Update(ctx context.Context, id string, fn func(*event.Event) error) (event.Event, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// EventDeps holds dependencies for the event orchestrators.
type EventDeps struct {
	EventStore EventStoreForOrchestrator
	GenerateID func() string
	Observer   MutationObserver
}

// CreateEventInput carries input for the create event orchestrator.
// Either EventDate or Date must be supplied.
type CreateEventInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date"`
	Location    string    `json:"location"`
	Organizer   string    `json:"organizer"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Type        string    `json:"type"`
	MaxRSVP     int       `json:"max_rsvp"`
}

// ExecuteCreateEvent schedules a new event at the top of the feed.
// PRE: Title is non-empty; Date or EventDate is set
// POST: Event stored with generated ID, RSVP 0; Organizer defaults to "Current User";
// Date is EventDate's own calendar day when omitted
func ExecuteCreateEvent(ctx context.Context, input CreateEventInput, deps EventDeps) (event.Event, error) {
	e := event.Event{
		ID:          deps.GenerateID(),
		Title:       input.Title,
		Description: input.Description,
		EventDate:   input.EventDate,
		Location:    input.Location,
		Organizer:   input.Organizer,
		Date:        input.Date,
		Time:        input.Time,
		Type:        input.Type,
		MaxRSVP:     input.MaxRSVP,
	}
	e.ApplyDefaults()

	if err := e.Validate(); err != nil {
		return event.Event{}, err
	}
	if err := deps.EventStore.Insert(ctx, e); err != nil {
		return event.Event{}, err
	}

	observe(deps.Observer, "event", "create")
	slog.Info("event_event", "event", "event_created", "event_id", e.ID, "date", e.Date)
	return e, nil
}

// ExecuteUpdateEvent overlays patch onto an existing event.
// PRE: id names an existing event
// POST: Returns the merged record; storage.ErrNotFound if missing
func ExecuteUpdateEvent(ctx context.Context, id string, patch event.Patch, deps EventDeps) (event.Event, error) {
	e, err := deps.EventStore.Update(ctx, id, func(cur *event.Event) error {
		cur.Apply(patch)
		return cur.Validate()
	})
	if err != nil {
		return event.Event{}, err
	}

	observe(deps.Observer, "event", "update")
	slog.Info("event_event", "event", "event_updated", "event_id", e.ID)
	return e, nil
}

// ExecuteDeleteEvent removes an event.
// POST: No event has id; a missing id succeeds with Removed=false
func ExecuteDeleteEvent(ctx context.Context, id string, deps EventDeps) (DeleteResult, error) {
	removed, err := deps.EventStore.Delete(ctx, id)
	if err != nil {
		return DeleteResult{}, err
	}
	if removed {
		observe(deps.Observer, "event", "delete")
		slog.Info("event_event", "event", "event_deleted", "event_id", id)
	}
	return DeleteResult{Message: deletedMessage, Removed: removed}, nil
}
