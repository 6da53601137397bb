package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"churchportal/internal/adapters/http/perf"
)

// DefaultSlowRequest is the default threshold for slow request warnings.
const DefaultSlowRequest = 200 * time.Millisecond

// RequestObserver receives one observation per served request.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, d time.Duration)
}

// requestIDCounter is an atomic counter for request IDs.
var requestIDCounter uint64

// statusWriter wraps http.ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter
	status int
}

// WriteHeader captures the status code and delegates to the underlying ResponseWriter.
func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

var statusWriterPool = sync.Pool{
	New: func() any {
		return &statusWriter{}
	},
}

// TimingConfig configures the Timing middleware. Nil sinks are skipped.
type TimingConfig struct {
	SlowThreshold time.Duration
	Collector     *perf.Collector
	Observer      RequestObserver
}

// Timing returns middleware that logs request duration and feeds the perf
// collector and request observer. Normal requests log at DEBUG; requests at or
// above the slow threshold log at WARN.
func Timing(cfg TimingConfig) func(http.Handler) http.Handler {
	threshold := cfg.SlowThreshold
	if threshold <= 0 {
		threshold = DefaultSlowRequest
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := atomic.AddUint64(&requestIDCounter, 1)
			route := RouteLabel(r.URL.Path)

			sw := statusWriterPool.Get().(*statusWriter)
			sw.ResponseWriter = w
			sw.status = http.StatusOK
			defer func() {
				elapsed := time.Since(start)
				durationMs := float64(elapsed.Microseconds()) / 1000.0

				level := slog.LevelDebug
				msg := "request"
				if elapsed >= threshold {
					level, msg = slog.LevelWarn, "slow_request"
				}
				slog.Log(r.Context(), level, msg,
					"request_id", reqID,
					"method", r.Method,
					"path", r.URL.Path,
					"status", sw.status,
					"duration_ms", durationMs,
				)

				if cfg.Collector != nil {
					cfg.Collector.Record(perf.Entry{
						Kind:       perf.KindRequest,
						Path:       r.Method + " " + route,
						StatusCode: sw.status,
						DurationMs: durationMs,
						Timestamp:  start,
					})
				}
				if cfg.Observer != nil {
					cfg.Observer.ObserveRequest(r.Method, route, sw.status, elapsed)
				}

				sw.ResponseWriter = nil
				statusWriterPool.Put(sw)
			}()

			next.ServeHTTP(sw, r)
		})
	}
}

// staticSegments are path segments that name a route rather than a record.
var staticSegments = map[string]bool{
	"login": true, "logout": true, "me": true, "password": true,
	"chat": true, "contributions": true, "summary": true, "budgets": true,
	"perf": true,
}

// RouteLabel collapses record ids in an /api path to {id} so metric labels stay bounded.
// /api/events/abc/rsvp becomes /api/events/{id}/rsvp.
func RouteLabel(path string) string {
	if !strings.HasPrefix(path, "/api/") {
		return path
	}
	parts := strings.Split(strings.TrimSuffix(path, "/"), "/")
	// parts: "", "api", kind, id, action
	if len(parts) > 3 && !staticSegments[parts[3]] {
		parts[3] = "{id}"
	}
	return strings.Join(parts, "/")
}
