package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"churchportal/internal/domain/calendar"
	"churchportal/internal/domain/event"
)

// EventUpdater applies an atomic change to one stored event.
type EventUpdater interface {
	Update(ctx context.Context, id string, fn func(*event.Event) error) (event.Event, error)
}

// CalendarDeps holds dependencies for the calendar commands.
type CalendarDeps struct {
	EventStore EventUpdater
	Observer   MutationObserver
}

// RescheduleEventInput carries input for the reschedule orchestrator.
type RescheduleEventInput struct {
	EventID string `json:"-"`
	Date    string `json:"date"`
}

// ExecuteRescheduleEvent moves an event to another calendar day.
// PRE: Date is a YYYY-MM-DD key; EventID names an existing event
// POST: Stored event's Date == input.Date; EventDate keeps its clock time
func ExecuteRescheduleEvent(ctx context.Context, input RescheduleEventInput, deps CalendarDeps) (event.Event, error) {
	if !event.ValidDateKey(input.Date) {
		return event.Event{}, event.ErrInvalidDate
	}

	var from string
	e, err := deps.EventStore.Update(ctx, input.EventID, func(e *event.Event) error {
		from = e.Date
		return e.MoveTo(input.Date)
	})
	if err != nil {
		return event.Event{}, err
	}

	observe(deps.Observer, "event", "reschedule")
	slog.Info("event_event", "event", "event_rescheduled", "event_id", e.ID, "from", from, "to", e.Date)
	return e, nil
}

// ExecuteRSVPEvent records one attendee for an event.
// PRE: EventID names an existing event
// POST: RSVP incremented by exactly 1, or calendar.ErrEventFull with the count unchanged
func ExecuteRSVPEvent(ctx context.Context, eventID string, deps CalendarDeps) (event.Event, error) {
	e, err := deps.EventStore.Update(ctx, eventID, func(e *event.Event) error {
		return e.AddRSVP()
	})
	if err != nil {
		if errors.Is(err, calendar.ErrEventFull) {
			slog.Info("event_event", "event", "rsvp_rejected", "event_id", eventID, "reason", "full")
		}
		return event.Event{}, err
	}

	observe(deps.Observer, "event", "rsvp")
	slog.Info("event_event", "event", "event_rsvp", "event_id", e.ID, "rsvp", e.RSVP, "max_rsvp", e.MaxRSVP)
	return e, nil
}
