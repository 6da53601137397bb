package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"churchportal/internal/adapters/http/metrics"
	"churchportal/internal/adapters/http/middleware"
	"churchportal/internal/adapters/http/perf"
	"churchportal/internal/adapters/storage/repository"
	"churchportal/internal/application/orchestrators"
	"churchportal/internal/domain/account"
)

// newServer builds the full middleware stack over a repository with seeded logins.
func newServer(t *testing.T) http.Handler {
	t.Helper()
	repo := repository.NewMemory()
	err := orchestrators.ExecuteSeedAccounts(context.Background(), orchestrators.AccountSeedDeps{
		AccountStore:  repo.Accounts,
		GenerateID:    func() string { return generateID() },
		Now:           time.Now,
		AdminEmail:    orchestrators.DefaultAdminEmail,
		AdminPassword: orchestrators.DefaultAdminPassword,
	})
	if err != nil {
		t.Fatalf("seed accounts: %v", err)
	}

	h, limiter, err := NewMux(Config{Repo: repo, Metrics: metrics.New(), Collector: perf.NewCollector(100), RateLimit: 1000})
	if err != nil {
		t.Fatalf("NewMux: %v", err)
	}
	t.Cleanup(limiter.Stop)
	timeNow = time.Now
	return h
}

func jsonRequest(method, url, body string, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func TestLoginFlow(t *testing.T) {
	h := newServer(t)

	rec := serve(h, jsonRequest("POST", "/api/auth/login", `{"email":"pastor@church.com","password":"wrong"}`))
	if got := decode[loginResponse](t, rec); rec.Code != http.StatusUnauthorized || got.Success || got.Message != "Invalid credentials" {
		t.Fatalf("bad password = %d %+v", rec.Code, got)
	}

	rec = serve(h, jsonRequest("POST", "/api/auth/login", `{"email":"pastor@church.com","password":"leader123"}`))
	got := decode[loginResponse](t, rec)
	if rec.Code != http.StatusOK || !got.Success || got.User.Role != account.RoleLeader {
		t.Fatalf("login = %d %+v", rec.Code, got)
	}
	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			cookie = c
		}
	}
	if cookie == nil || !cookie.HttpOnly {
		t.Fatalf("session cookie = %+v", cookie)
	}

	me := decode[struct{ User *account.User }](t, serve(h, jsonRequest("GET", "/api/auth/me", "", cookie)))
	if me.User == nil || me.User.FirstName != "John" {
		t.Errorf("me = %+v", me.User)
	}

	rec = serve(h, jsonRequest("POST", "/api/announcements", `{"title":"Choir Practice","content":"Thursday 7pm","author":"John"}`, cookie))
	if rec.Code != http.StatusCreated {
		t.Errorf("create with session = %d %s", rec.Code, rec.Body)
	}

	serve(h, jsonRequest("POST", "/api/auth/logout", "", cookie))
	me = decode[struct{ User *account.User }](t, serve(h, jsonRequest("GET", "/api/auth/me", "", cookie)))
	if me.User != nil {
		t.Errorf("user after logout = %+v", me.User)
	}
}

func TestMetricsAndHealth(t *testing.T) {
	h := newServer(t)

	if res := serve(h, jsonRequest("GET", "/healthz", "")); res.Code != http.StatusOK {
		t.Errorf("healthz = %d", res.Code)
	}
	serve(h, jsonRequest("GET", "/api/events", ""))

	res := serve(h, httptest.NewRequest("GET", "/metrics", nil))
	body := res.Body.String()
	if res.Code != http.StatusOK || !strings.Contains(body, "church_http_request_duration_seconds") {
		t.Errorf("metrics = %d\n%s", res.Code, body)
	}
	if !strings.Contains(body, `route="/api/events"`) {
		t.Errorf("request for /api/events not observed:\n%s", body)
	}
}

func TestSecurityHeaders(t *testing.T) {
	h := newServer(t)
	res := serve(h, jsonRequest("GET", "/api/events", ""))
	if res.Header().Get("X-Frame-Options") != "DENY" || res.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Errorf("headers = %v", res.Header())
	}
}

func TestCSRFKey(t *testing.T) {
	if _, err := csrfKey(nil, true); err != ErrCSRFKeyRequired {
		t.Errorf("production without key = %v", err)
	}
	if k, err := csrfKey(nil, false); err != nil || len(k) != 32 {
		t.Errorf("dev key = %d bytes, %v", len(k), err)
	}
	if _, err := DecodeCSRFKey("abcd"); err == nil {
		t.Error("short key accepted")
	}
	if k, err := DecodeCSRFKey(strings.Repeat("ab", 32)); err != nil || len(k) != 32 {
		t.Errorf("valid key = %d bytes, %v", len(k), err)
	}
}

func TestPerfSnapshot_AdminOnly(t *testing.T) {
	h := newServer(t)
	serve(h, jsonRequest("GET", "/api/sermons", ""))

	if res := serve(h, authRequest("GET", "/api/admin/perf", "", &leaderSession)); res.Code != http.StatusForbidden {
		t.Errorf("leader = %d, want 403", res.Code)
	}
	res := serve(h, authRequest("GET", "/api/admin/perf", "", &adminSession))
	snap := decode[perf.Snapshot](t, res)
	if res.Code != http.StatusOK || snap.TotalRecorded < 2 {
		t.Errorf("perf = %d %+v", res.Code, snap)
	}
}

func TestChangePassword(t *testing.T) {
	h := newServer(t)

	rec := serve(h, jsonRequest("POST", "/api/auth/password", `{"current_password":"member123","new_password":"psalm23psalm23"}`))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous change = %d, want 401", rec.Code)
	}

	rec = serve(h, jsonRequest("POST", "/api/auth/login", `{"email":"member@church.com","password":"member123"}`))
	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("no session cookie")
	}

	rec = serve(h, jsonRequest("POST", "/api/auth/password", `{"current_password":"wrong123","new_password":"psalm23psalm23"}`, cookie))
	if got := decode[errorBody](t, rec); rec.Code != http.StatusBadRequest || got.Field != "current_password" {
		t.Fatalf("wrong current = %d %+v", rec.Code, got)
	}

	rec = serve(h, jsonRequest("POST", "/api/auth/password", `{"current_password":"member123","new_password":"psalm23psalm23"}`, cookie))
	if rec.Code != http.StatusOK {
		t.Fatalf("change = %d %s", rec.Code, rec.Body)
	}

	rec = serve(h, jsonRequest("POST", "/api/auth/login", `{"email":"member@church.com","password":"psalm23psalm23"}`))
	if rec.Code != http.StatusOK {
		t.Errorf("login with new password = %d", rec.Code)
	}
}
