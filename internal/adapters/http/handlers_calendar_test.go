package web

import (
	"net/http"
	"strings"
	"testing"

	"churchportal/internal/application/projections"
	"churchportal/internal/domain/event"
)

func sabbathEvents() []event.Event {
	return []event.Event{
		{ID: "e1", Title: "Sabbath School", Date: "2024-01-13", Time: "09:30", Type: event.TypeRecurring, RSVP: 45},
		{ID: "e2", Title: "Prayer Meeting", Date: "2024-01-17", Time: "19:00", Type: event.TypeRecurring, RSVP: 12, MaxRSVP: 12},
	}
}

func TestCalendar_MonthGrid(t *testing.T) {
	mux, repo, _ := testEnv(t)
	insertEvents(t, repo, sabbathEvents()...)

	rec := serve(mux, authRequest("GET", "/api/calendar?month=2024-01", "", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d %s", rec.Code, rec.Body)
	}
	res := decode[projections.CalendarMonthResult](t, rec)
	if len(res.Days) != 32 || res.Prev != "2023-12" || res.Next != "2024-02" {
		t.Fatalf("grid = %d cells, prev %s next %s", len(res.Days), res.Prev, res.Next)
	}
	if d := res.Days[13]; d.Day != 13 || len(d.Events) != 1 || d.Events[0].ID != "e1" {
		t.Errorf("day 13 = %+v", d)
	}
}

func TestCalendar_DefaultsToCurrentMonth(t *testing.T) {
	mux, _, _ := testEnv(t)
	res := decode[projections.CalendarMonthResult](t, serve(mux, authRequest("GET", "/api/calendar", "", nil)))
	if res.Month != "2024-01" {
		t.Errorf("month = %s, want 2024-01", res.Month)
	}
}

func TestCalendar_BadMonth(t *testing.T) {
	mux, _, _ := testEnv(t)
	if rec := serve(mux, authRequest("GET", "/api/calendar?month=January", "", nil)); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestReschedule(t *testing.T) {
	mux, repo, _ := testEnv(t)
	insertEvents(t, repo, sabbathEvents()...)

	tests := []struct {
		name string
		url  string
		body string
		sess string
		want int
	}{
		{"member may not move events", "/api/events/e1/reschedule", `{"date":"2024-01-20"}`, "member", http.StatusForbidden},
		{"bad key", "/api/events/e1/reschedule", `{"date":"20/01/2024"}`, "leader", http.StatusBadRequest},
		{"unknown event", "/api/events/zz/reschedule", `{"date":"2024-01-20"}`, "leader", http.StatusNotFound},
		{"id only from path", "/api/events/e1/reschedule", `{"EventID":"e2","date":"2024-01-27"}`, "leader", http.StatusBadRequest},
		{"moves the event", "/api/events/e1/reschedule", `{"date":"2024-01-20"}`, "leader", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(mux, authRequest("POST", tt.url, tt.body, sessionFor(tt.sess)))
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.want, rec.Body)
			}
		})
	}

	e, _ := repo.Events.GetByID(t.Context(), "e1")
	if e.Date != "2024-01-20" {
		t.Errorf("stored date = %s, want 2024-01-20", e.Date)
	}
	if other, _ := repo.Events.GetByID(t.Context(), "e2"); other.Date != "2024-01-17" {
		t.Errorf("e2 moved to %s", other.Date)
	}
}

func TestRSVP(t *testing.T) {
	mux, repo, _ := testEnv(t)
	insertEvents(t, repo, sabbathEvents()...)

	if rec := serve(mux, authRequest("POST", "/api/events/e1/rsvp", "", nil)); rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous = %d, want 401", rec.Code)
	}

	rec := serve(mux, authRequest("POST", "/api/events/e1/rsvp", "", &memberSession))
	if got := decode[event.Event](t, rec); rec.Code != http.StatusOK || got.RSVP != 46 {
		t.Errorf("rsvp = %d %+v", rec.Code, got)
	}

	if rec := serve(mux, authRequest("POST", "/api/events/e2/rsvp", "", &memberSession)); rec.Code != http.StatusConflict {
		t.Errorf("full event = %d, want 409", rec.Code)
	}
	if want := `church_mutations_total{kind="event",op="rsvp"} 1`; !strings.Contains(scrapeMetrics(t), want) {
		t.Errorf("metrics missing %q", want)
	}
}
