package calendar

import (
	"errors"
	"fmt"
	"time"

	"churchportal/internal/domain/event"
)

// MonthLayout is the query format for a displayed month.
const MonthLayout = "2006-01"

// Domain errors
var (
	ErrPlaceholderCell = errors.New("cannot drop an event on a blank calendar cell")
	ErrDayOutOfRange   = errors.New("day is outside the displayed month")
	ErrInvalidMonth    = errors.New("month must be formatted YYYY-MM")
	ErrEventNotFound   = errors.New("event is not on the calendar")
	ErrEventFull       = event.ErrEventFull
)

// Month identifies a displayed calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// Cell is one square of the month grid. Day 0 marks a leading placeholder.
type Cell struct {
	Day int    `json:"day"`
	Key string `json:"key,omitempty"`
}

// DayCell is a grid cell with the events scheduled on it.
type DayCell struct {
	Cell
	Events []event.Event `json:"events"`
}

// MonthOf returns the month containing t, in t's own location.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses a YYYY-MM month.
// PRE: s is non-empty
// POST: Returns the month or ErrInvalidMonth
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return Month{}, ErrInvalidMonth
	}
	return MonthOf(t), nil
}

// String formats the month as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Label is the display title, e.g. "January 2024".
func (m Month) Label() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// Next returns the following month, rolling into the next year after December.
func (m Month) Next() Month {
	return m.add(1)
}

// Prev returns the preceding month, rolling into the previous year before January.
func (m Month) Prev() Month {
	return m.add(-1)
}

func (m Month) add(n int) Month {
	t := time.Date(m.Year, m.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	return MonthOf(t)
}

// first is midnight UTC on the 1st of the month.
func (m Month) first() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// DaysIn returns the number of days in the month.
func (m Month) DaysIn() int {
	return m.first().AddDate(0, 1, -1).Day()
}

// LeadingBlanks is the number of placeholders before the 1st, counting from Sunday.
func (m Month) LeadingBlanks() int {
	return int(m.first().Weekday())
}

// DateKey formats day as a YYYY-MM-DD key.
// PRE: 1 <= day <= DaysIn()
// POST: Returns a zero-padded key or ErrDayOutOfRange
func (m Month) DateKey(day int) (string, error) {
	if day < 1 || day > m.DaysIn() {
		return "", ErrDayOutOfRange
	}
	return fmt.Sprintf("%04d-%02d-%02d", m.Year, int(m.Month), day), nil
}

// Grid lays the month out as Sunday-first week rows: LeadingBlanks placeholders
// followed by one cell per day. No trailing placeholders are added.
// POST: len(result) == LeadingBlanks() + DaysIn()
func (m Month) Grid() []Cell {
	blanks := m.LeadingBlanks()
	days := m.DaysIn()
	cells := make([]Cell, 0, blanks+days)
	for i := 0; i < blanks; i++ {
		cells = append(cells, Cell{})
	}
	for d := 1; d <= days; d++ {
		key, _ := m.DateKey(d)
		cells = append(cells, Cell{Day: d, Key: key})
	}
	return cells
}

// BindEvents attaches each event to the cell whose key equals the event's date.
// Events outside the month are dropped. Placeholders never carry events.
// INVARIANT: event order within a day follows the input order
func BindEvents(m Month, events []event.Event) []DayCell {
	byKey := make(map[string][]event.Event)
	for _, e := range events {
		byKey[e.Date] = append(byKey[e.Date], e)
	}
	grid := m.Grid()
	out := make([]DayCell, len(grid))
	for i, c := range grid {
		out[i] = DayCell{Cell: c, Events: []event.Event{}}
		if c.Day == 0 {
			continue
		}
		if evs, ok := byKey[c.Key]; ok {
			out[i].Events = evs
		}
	}
	return out
}

// EventsOn returns the events whose date equals key, in input order.
func EventsOn(events []event.Event, key string) []event.Event {
	var out []event.Event
	for _, e := range events {
		if e.Date == key {
			out = append(out, e)
		}
	}
	return out
}

// Reschedule returns a copy of events with eventID moved to the day key.
// PRE: key is a YYYY-MM-DD key
// POST: only the matching event changes; the input slice is not modified
func Reschedule(events []event.Event, eventID, key string) ([]event.Event, error) {
	out := make([]event.Event, len(events))
	copy(out, events)
	for i := range out {
		if out[i].ID != eventID {
			continue
		}
		if err := out[i].MoveTo(key); err != nil {
			return nil, err
		}
		return out, nil
	}
	return nil, ErrEventNotFound
}

// DropTarget resolves a drop on day within m to its date key.
// Day 0 is a placeholder cell and is rejected.
func DropTarget(m Month, day int) (string, error) {
	if day == 0 {
		return "", ErrPlaceholderCell
	}
	return m.DateKey(day)
}
