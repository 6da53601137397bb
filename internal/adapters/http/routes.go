package web

import (
	"net/http"
	"time"
)

func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/login", handleLogin)
	mux.HandleFunc("POST /api/auth/logout", handleLogout)
	mux.HandleFunc("GET /api/auth/me", handleMe)
	mux.HandleFunc("POST /api/auth/password", handleChangePassword)

	announcementCollection().register(mux, "announcements")
	eventCollection().register(mux, "events")
	sermonCollection().register(mux, "sermons")
	departmentCollection().register(mux, "departments")
	memberCollection().register(mux, "members")

	mux.HandleFunc("POST /api/announcements/{id}/broadcast", handleBroadcast)
	mux.HandleFunc("POST /api/events/{id}/reschedule", handleReschedule)
	mux.HandleFunc("POST /api/events/{id}/rsvp", handleRSVP)
	mux.HandleFunc("GET /api/calendar", handleCalendar)

	mux.HandleFunc("GET /api/dashboard", handleDashboard)
	mux.HandleFunc("GET /api/directory", handleDirectory)

	mux.HandleFunc("GET /api/live", handleLive)
	mux.HandleFunc("POST /api/live", handleSetLive)
	mux.HandleFunc("GET /api/live/chat", handleChat)
	mux.HandleFunc("POST /api/live/chat", handlePostChat)

	mux.HandleFunc("GET /api/treasury/summary", handleTreasurySummary)
	mux.HandleFunc("GET /api/treasury/contributions", handleContributions)
	mux.HandleFunc("POST /api/treasury/contributions", handleRecordContribution)
	mux.HandleFunc("GET /api/treasury/budgets", handleBudgets)

	mux.HandleFunc("GET /api/admin/perf", handlePerf)

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.Handle("GET /metrics", metricsHandler())
}

// handleHealth handles GET /healthz
func handleHealth(w http.ResponseWriter, r *http.Request) {
	if _, err := stores.Events.List(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// metricsHandler defers to the recorder configured at startup.
func metricsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder.Handler().ServeHTTP(w, r)
	})
}

// perfWindow is how far back the performance view looks.
const perfWindow = time.Hour

// handlePerf handles GET /api/admin/perf
func handlePerf(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}
	if perfCollector == nil {
		writeJSONError(w, http.StatusNotFound, "performance collection is disabled")
		return
	}
	writeJSON(w, http.StatusOK, perfCollector.Snapshot(timeNow().Add(-perfWindow), 10))
}
