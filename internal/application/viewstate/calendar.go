package viewstate

import (
	"context"

	"churchportal/internal/application/orchestrators"
	"churchportal/internal/application/projections"
	"churchportal/internal/domain/account"
	"churchportal/internal/domain/calendar"
	"churchportal/internal/domain/event"
)

// CalendarServices bundles what the calendar page reads and commands.
type CalendarServices struct {
	Events   projections.EventStore
	Commands orchestrators.CalendarDeps
}

// Calendar is the state of the monthly calendar page.
type Calendar struct {
	Role  string
	Month calendar.Month
	Err   error

	events   []event.Event
	dragging string
	svc      CalendarServices
}

// NewCalendar creates a calendar for a viewer with role, showing month with no events loaded.
func NewCalendar(role string, month calendar.Month, svc CalendarServices) *Calendar {
	return &Calendar{Role: role, Month: month, svc: svc}
}

// CanManage reports whether the viewer may move events.
func (c *Calendar) CanManage() bool {
	return account.CanManageContent(c.Role)
}

// Load replaces the local events with the stored ones.
func (c *Calendar) Load(ctx context.Context) error {
	events, err := c.svc.Events.List(ctx)
	if err != nil {
		c.Err = err
		return err
	}
	c.events = events
	c.Err = nil
	return nil
}

// Next shows the following month.
func (c *Calendar) Next() { c.Month = c.Month.Next() }

// Prev shows the previous month.
func (c *Calendar) Prev() { c.Month = c.Month.Prev() }

// Days lays out the displayed month with its events.
func (c *Calendar) Days() []calendar.DayCell {
	return calendar.BindEvents(c.Month, c.events)
}

// EventsForDay returns the events on day of the displayed month.
// Placeholders and out-of-range days have none.
func (c *Calendar) EventsForDay(day int) []event.Event {
	key, err := calendar.DropTarget(c.Month, day)
	if err != nil {
		return nil
	}
	return calendar.EventsOn(c.events, key)
}

// Dragging returns the id of the event being dragged, empty when none.
func (c *Calendar) Dragging() string { return c.dragging }

// BeginDrag picks up an event.
// POST: ErrNotPermitted with no drag started when the viewer cannot manage events
func (c *Calendar) BeginDrag(eventID string) error {
	if !c.CanManage() {
		return ErrNotPermitted
	}
	c.dragging = eventID
	return nil
}

// DropOn reschedules the dragged event to day of the displayed month.
// Without an active drag it does nothing.
// POST: the drag is over whatever the outcome
func (c *Calendar) DropOn(ctx context.Context, day int) error {
	if c.dragging == "" {
		return nil
	}
	id := c.dragging
	c.dragging = ""
	if !c.CanManage() {
		c.Err = ErrNotPermitted
		return ErrNotPermitted
	}

	key, err := calendar.DropTarget(c.Month, day)
	if err != nil {
		c.Err = err
		return err
	}
	e, err := orchestrators.ExecuteRescheduleEvent(ctx, orchestrators.RescheduleEventInput{EventID: id, Date: key}, c.svc.Commands)
	if err != nil {
		c.Err = err
		return err
	}
	c.replace(e)
	c.Err = nil
	return nil
}

// RSVP records one attendee for an event.
func (c *Calendar) RSVP(ctx context.Context, eventID string) error {
	e, err := orchestrators.ExecuteRSVPEvent(ctx, eventID, c.svc.Commands)
	if err != nil {
		c.Err = err
		return err
	}
	c.replace(e)
	c.Err = nil
	return nil
}

func (c *Calendar) replace(e event.Event) {
	for i := range c.events {
		if c.events[i].ID == e.ID {
			c.events[i] = e
			return
		}
	}
	c.events = append(c.events, e)
}
