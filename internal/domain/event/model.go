package event

import (
	"errors"
	"time"

	"churchportal/internal/domain/validation"
)

// DefaultOrganizer is recorded when an event is created without an organizer.
const DefaultOrganizer = "Current User"

// Layouts for the calendar date key and the clock time.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Event types
const (
	TypeRecurring = "recurring"
	TypeSpecial   = "special"
)

// ValidTypes contains all valid event types.
var ValidTypes = []string{TypeRecurring, TypeSpecial}

// Max length constants for user-editable fields.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
	MaxLocationLength    = 200
	MaxOrganizerLength   = 100
)

// Domain errors
var (
	ErrEmptyTitle         = validation.New("title", "event title cannot be empty")
	ErrTitleTooLong       = validation.New("title", "event title cannot exceed 200 characters")
	ErrDescriptionTooLong = validation.New("description", "event description cannot exceed 2000 characters")
	ErrLocationTooLong    = validation.New("location", "event location cannot exceed 200 characters")
	ErrOrganizerTooLong   = validation.New("organizer", "event organizer cannot exceed 100 characters")
	ErrMissingDate        = validation.New("date", "event needs a date or an event_date")
	ErrInvalidDate        = validation.New("date", "event date must be formatted YYYY-MM-DD")
	ErrInvalidTime        = validation.New("time", "event time must be formatted HH:MM")
	ErrInvalidType        = validation.New("type", "event type must be one of: recurring, special")
	ErrNegativeRSVP       = validation.New("rsvp", "event rsvp count cannot be negative")
	ErrNegativeCapacity   = validation.New("max_rsvp", "event max_rsvp cannot be negative")
	ErrEventFull          = errors.New("event has reached its RSVP capacity")
)

// Event is a scheduled church gathering. EventDate is the full timestamp shown on the
// dashboard; Date and Time are the calendar's day key and clock label.
// INVARIANT: Date equals EventDate's own calendar day once defaults are applied
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date"`
	Location    string    `json:"location"`
	Organizer   string    `json:"organizer"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Type        string    `json:"type"`
	RSVP        int       `json:"rsvp"`
	MaxRSVP     int       `json:"max_rsvp"` // 0 means unlimited
}

// Patch carries the fields a caller wants to change. Nil fields are left as they are.
type Patch struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	EventDate   *time.Time `json:"event_date,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Organizer   *string    `json:"organizer,omitempty"`
	Date        *string    `json:"date,omitempty"`
	Time        *string    `json:"time,omitempty"`
	Type        *string    `json:"type,omitempty"`
	RSVP        *int       `json:"rsvp,omitempty"`
	MaxRSVP     *int       `json:"max_rsvp,omitempty"`
}

// Validate checks if the Event has valid data.
// PRE: Event struct is populated
// POST: Returns nil if valid, a *validation.Error otherwise
func (e *Event) Validate() error {
	if validation.Blank(e.Title) {
		return ErrEmptyTitle
	}
	if len(e.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if len(e.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if len(e.Location) > MaxLocationLength {
		return ErrLocationTooLong
	}
	if len(e.Organizer) > MaxOrganizerLength {
		return ErrOrganizerTooLong
	}
	if e.Date == "" {
		return ErrMissingDate
	}
	if !ValidDateKey(e.Date) {
		return ErrInvalidDate
	}
	if e.Time != "" {
		if _, err := time.Parse(TimeLayout, e.Time); err != nil {
			return ErrInvalidTime
		}
	}
	if !validation.OneOf(e.Type, ValidTypes) {
		return ErrInvalidType
	}
	if e.RSVP < 0 {
		return ErrNegativeRSVP
	}
	if e.MaxRSVP < 0 {
		return ErrNegativeCapacity
	}
	return nil
}

// ApplyDefaults fills the fields a new event may omit.
// The date key is taken from EventDate's own calendar day, without converting zones.
// POST: Organizer and Type are non-empty; Date, Time and EventDate agree when derivable
func (e *Event) ApplyDefaults() {
	if validation.Blank(e.Organizer) {
		e.Organizer = DefaultOrganizer
	}
	if e.Type == "" {
		e.Type = TypeSpecial
	}
	if e.Date == "" && !e.EventDate.IsZero() {
		e.Date = e.EventDate.Format(DateLayout)
	}
	if e.Time == "" && !e.EventDate.IsZero() {
		e.Time = e.EventDate.Format(TimeLayout)
	}
	if e.EventDate.IsZero() && ValidDateKey(e.Date) {
		e.EventDate = combine(e.Date, e.Time)
	}
}

// Apply overlays p onto the event.
// A new event_date without an explicit date re-derives the day key from it; a new date
// without an event_date moves event_date to that day, keeping its clock time.
// INVARIANT: ID is never changed
func (e *Event) Apply(p Patch) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.Organizer != nil {
		e.Organizer = *p.Organizer
	}
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.RSVP != nil {
		e.RSVP = *p.RSVP
	}
	if p.MaxRSVP != nil {
		e.MaxRSVP = *p.MaxRSVP
	}
	if p.Time != nil {
		e.Time = *p.Time
	}
	if p.EventDate != nil {
		e.EventDate = *p.EventDate
		if p.Date == nil {
			e.Date = e.EventDate.Format(DateLayout)
		}
	}
	if p.Date != nil {
		if p.EventDate == nil && e.MoveTo(*p.Date) == nil {
			return
		}
		e.Date = *p.Date
	}
}

// MoveTo places the event on another calendar day, keeping its clock time.
// PRE: key is a YYYY-MM-DD date key
// POST: Date == key; EventDate moved to the same day in its own location
func (e *Event) MoveTo(key string) error {
	day, err := time.Parse(DateLayout, key)
	if err != nil {
		return ErrInvalidDate
	}
	e.Date = key
	if e.EventDate.IsZero() {
		e.EventDate = combine(key, e.Time)
		return nil
	}
	ed := e.EventDate
	e.EventDate = time.Date(day.Year(), day.Month(), day.Day(),
		ed.Hour(), ed.Minute(), ed.Second(), ed.Nanosecond(), ed.Location())
	return nil
}

// AddRSVP records one more attendee.
// PRE: MaxRSVP is 0 (unlimited) or RSVP < MaxRSVP
// POST: RSVP incremented by exactly 1; ErrEventFull leaves the count untouched
func (e *Event) AddRSVP() error {
	if e.IsFull() {
		return ErrEventFull
	}
	e.RSVP++
	return nil
}

// IsFull reports whether the event has no RSVP capacity left.
// INVARIANT: Event fields are not mutated
func (e *Event) IsFull() bool {
	return e.MaxRSVP > 0 && e.RSVP >= e.MaxRSVP
}

// ValidDateKey reports whether key is a zero-padded YYYY-MM-DD date.
func ValidDateKey(key string) bool {
	if len(key) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, key)
	return err == nil
}

func combine(date, clock string) time.Time {
	if t, err := time.Parse(DateLayout+" "+TimeLayout, date+" "+clock); err == nil {
		return t
	}
	t, _ := time.Parse(DateLayout, date)
	return t
}
