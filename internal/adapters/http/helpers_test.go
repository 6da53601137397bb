package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"churchportal/internal/adapters/email"
	"churchportal/internal/adapters/http/metrics"
	"churchportal/internal/adapters/http/middleware"
	"churchportal/internal/adapters/storage/repository"
	"churchportal/internal/domain/account"
	"churchportal/internal/domain/event"
)

var adminSession = middleware.Session{User: account.User{
	ID: "admin-001", Email: "admin@church.com", FirstName: "Admin", LastName: "User", Role: "admin",
}}

var leaderSession = middleware.Session{User: account.User{
	ID: "leader-001", Email: "pastor@church.com", FirstName: "John", LastName: "Johnson", Role: "leader",
}}

var memberSession = middleware.Session{User: account.User{
	ID: "member-001", Email: "member@church.com", FirstName: "Mary", LastName: "Wilson", Role: "member",
}}

// testEnv points the package globals at fresh collaborators and returns a bare route mux.
func testEnv(t *testing.T) (*http.ServeMux, *repository.Repository, *email.LogSender) {
	t.Helper()
	stores = repository.NewMemory()
	recorder = metrics.New()
	sessions = middleware.NewSessionStore()
	sender := email.NewLogSender()
	emailSender, emailFrom, emailReplyTo = sender, "Grace Church <news@church.com>", ""

	n := 0
	generateID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	fixed := time.Date(2024, 1, 16, 9, 30, 0, 0, time.UTC)
	timeNow = func() time.Time { return fixed }

	mux := http.NewServeMux()
	registerRoutes(mux)
	return mux, stores, sender
}

func authRequest(method, url, body string, sess *middleware.Session) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	if sess == nil {
		return req
	}
	return req.WithContext(middleware.ContextWithSession(req.Context(), *sess))
}

// sessionFor returns the test session for role; empty means anonymous.
func sessionFor(role string) *middleware.Session {
	switch role {
	case "admin":
		return &adminSession
	case "leader":
		return &leaderSession
	case "member":
		return &memberSession
	}
	return nil
}

func serve(mux http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func insertEvents(t *testing.T, repo *repository.Repository, events ...event.Event) {
	t.Helper()
	for _, e := range events {
		if err := repo.Events.Insert(context.Background(), e); err != nil {
			t.Fatalf("insert %s: %v", e.ID, err)
		}
	}
}

// scrapeMetrics returns the recorder's Prometheus exposition.
func scrapeMetrics(t *testing.T) string {
	t.Helper()
	rec := serve(recorder.Handler(), httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", rec.Code)
	}
	return rec.Body.String()
}
