package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainAccount "churchportal/internal/domain/account"
)

var leaderUser = domainAccount.User{ID: "acc-2", Email: "pastor@church.com", FirstName: "John", LastName: "Johnson", Role: "leader"}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestSessionStore_Lifecycle(t *testing.T) {
	ss := NewSessionStore()
	now := time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC)
	ss.now = func() time.Time { return now }

	token, err := ss.Create(leaderUser)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	sess, ok := ss.Get(token)
	if !ok || sess.User.Email != "pastor@church.com" || sess.FullName() != "John Johnson" {
		t.Fatalf("Get = %+v, %v", sess, ok)
	}

	now = now.Add(SessionTTL + time.Second)
	if _, ok := ss.Get(token); ok {
		t.Error("expired session still valid")
	}
	if ss.Len() != 0 {
		t.Error("expired session not removed")
	}

	token, _ = ss.Create(leaderUser)
	ss.Delete(token)
	if _, ok := ss.Get(token); ok {
		t.Error("deleted session still valid")
	}
}

func TestAuth_CookieSetsSession(t *testing.T) {
	ss := NewSessionStore()
	token, _ := ss.Create(leaderUser)

	var got Session
	h := Auth(ss)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = GetSessionFromContext(r.Context())
	}))
	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	h.ServeHTTP(httptest.NewRecorder(), req)

	if got.User.ID != "acc-2" {
		t.Errorf("session = %+v", got)
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name string
		user *domainAccount.User
		want int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"member", &domainAccount.User{ID: "m", Role: "member"}, http.StatusForbidden},
		{"leader", &leaderUser, http.StatusNoContent},
	}
	h := RequireRole("admin", "leader")(okHandler())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/announcements", nil)
			if tt.user != nil {
				req = req.WithContext(ContextWithSession(req.Context(), Session{User: *tt.user}))
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			if rr.Code != tt.want {
				t.Errorf("status = %d, want %d", rr.Code, tt.want)
			}
		})
	}
}

func TestRequireAuth_JSONBody(t *testing.T) {
	rr := httptest.NewRecorder()
	RequireAuth(okHandler()).ServeHTTP(rr, httptest.NewRequest("GET", "/api/dashboard", nil))
	if rr.Code != http.StatusUnauthorized || rr.Header().Get("Content-Type") != "application/json" {
		t.Errorf("got %d %q", rr.Code, rr.Header().Get("Content-Type"))
	}
}

func TestRateLimiter_Refills(t *testing.T) {
	rl := NewRateLimiter(2, time.Second)
	defer rl.Stop()
	now := time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	if !rl.Allow("10.0.0.1") || !rl.Allow("10.0.0.1") {
		t.Fatal("first two requests should pass")
	}
	if rl.Allow("10.0.0.1") {
		t.Error("third request within the interval should be limited")
	}
	if !rl.Allow("10.0.0.2") {
		t.Error("other clients have their own bucket")
	}
	now = now.Add(time.Second)
	if !rl.Allow("10.0.0.1") {
		t.Error("bucket should refill after the interval")
	}
}

func TestCSRF_ExemptsJSON(t *testing.T) {
	key := make([]byte, 32)
	h := CSRF(key, false, nil)(okHandler())

	req := httptest.NewRequest("POST", "/api/auth/login", nil)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Errorf("json post = %d, want 204", rr.Code)
	}

	form := httptest.NewRequest("POST", "/api/auth/login", nil)
	form.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, form)
	if rr.Code != http.StatusForbidden {
		t.Errorf("form post without token = %d, want 403", rr.Code)
	}
}
