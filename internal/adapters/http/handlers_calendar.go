package web

import (
	"net/http"

	"churchportal/internal/application/orchestrators"
	"churchportal/internal/application/projections"
	"churchportal/internal/domain/calendar"
)

func calendarDeps() orchestrators.CalendarDeps {
	return orchestrators.CalendarDeps{EventStore: stores.Events, Observer: recorder}
}

// handleCalendar handles GET /api/calendar?month=YYYY-MM. The current month is the default.
func handleCalendar(w http.ResponseWriter, r *http.Request) {
	month := calendar.MonthOf(timeNow())
	if q := r.URL.Query().Get("month"); q != "" {
		m, err := calendar.ParseMonth(q)
		if err != nil {
			writeError(w, err)
			return
		}
		month = m
	}

	res, err := projections.QueryCalendarMonth(r.Context(), projections.CalendarMonthQuery{Month: month},
		projections.CalendarMonthDeps{EventStore: stores.Events})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleReschedule handles POST /api/events/{id}/reschedule
func handleReschedule(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireContentManager(w, r); !ok {
		return
	}
	var input orchestrators.RescheduleEventInput
	if err := strictDecode(r, &input); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	input.EventID = r.PathValue("id")

	e, err := orchestrators.ExecuteRescheduleEvent(r.Context(), input, calendarDeps())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// handleRSVP handles POST /api/events/{id}/rsvp
func handleRSVP(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r); !ok {
		return
	}
	e, err := orchestrators.ExecuteRSVPEvent(r.Context(), r.PathValue("id"), calendarDeps())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}
