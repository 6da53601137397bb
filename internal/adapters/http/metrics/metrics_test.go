package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func mutationCount(r *Recorder, kind, op string) float64 {
	return testutil.ToFloat64(r.mutations.WithLabelValues(kind, op))
}

func TestRecorder_ObserveMutation(t *testing.T) {
	r := New()
	r.ObserveMutation("event", "create")
	r.ObserveMutation("event", "create")
	r.ObserveMutation("event", "rsvp")

	if got := mutationCount(r, "event", "create"); got != 2 {
		t.Errorf("create count = %v, want 2", got)
	}
	if got := mutationCount(r, "sermon", "delete"); got != 0 {
		t.Errorf("untouched count = %v, want 0", got)
	}
}

func TestRecorder_Handler(t *testing.T) {
	r := New()
	r.ObserveMutation("announcement", "create")
	r.ObserveRequest("GET", "/api/events", 200, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)

	for _, want := range []string{
		`church_mutations_total{kind="announcement",op="create"} 1`,
		`church_http_request_duration_seconds_count{method="GET",route="/api/events",status="200"} 1`,
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("exposition missing %q", want)
		}
	}
}

func TestRecorders_DoNotShareRegistry(t *testing.T) {
	a, b := New(), New()
	a.ObserveMutation("member", "delete")
	if got := mutationCount(b, "member", "delete"); got != 0 {
		t.Errorf("second recorder saw %v mutations", got)
	}
}
