package projections

import (
	"context"

	"churchportal/internal/domain/calendar"
)

// CalendarMonthQuery carries the month to display.
type CalendarMonthQuery struct {
	Month calendar.Month
}

// CalendarMonthDeps holds dependencies for QueryCalendarMonth.
type CalendarMonthDeps struct {
	EventStore EventStore
}

// CalendarMonthResult is a month grid with its events bound to days.
type CalendarMonthResult struct {
	Month string             `json:"month"`
	Label string             `json:"label"`
	Prev  string             `json:"prev"`
	Next  string             `json:"next"`
	Days  []calendar.DayCell `json:"days"`
}

// QueryCalendarMonth lays out a month and binds every stored event whose date falls in it.
// PRE: query.Month is a valid month
// POST: len(Days) == leading placeholders + days in month
func QueryCalendarMonth(ctx context.Context, query CalendarMonthQuery, deps CalendarMonthDeps) (CalendarMonthResult, error) {
	events, err := deps.EventStore.List(ctx)
	if err != nil {
		return CalendarMonthResult{}, err
	}
	m := query.Month
	return CalendarMonthResult{
		Month: m.String(),
		Label: m.Label(),
		Prev:  m.Prev().String(),
		Next:  m.Next().String(),
		Days:  calendar.BindEvents(m, events),
	}, nil
}
