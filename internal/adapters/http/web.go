// Package web serves the church portal's JSON API.
package web

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"churchportal/internal/adapters/email"
	"churchportal/internal/adapters/http/metrics"
	"churchportal/internal/adapters/http/middleware"
	"churchportal/internal/adapters/http/perf"
	"churchportal/internal/adapters/storage/repository"
)

// Config wires the server's collaborators. Nil optional fields get defaults.
type Config struct {
	Repo      *repository.Repository
	Metrics   *metrics.Recorder
	Collector *perf.Collector // optional
	Sender    email.Sender    // optional; logs instead of sending
	EmailFrom string
	ReplyTo   string

	CSRFKey        []byte // 32 bytes; random per start when empty outside production
	Production     bool
	TrustedOrigins []string
	SlowRequest    time.Duration
	RateLimit      int // requests per second per client; 0 uses DefaultRateLimit
}

// DefaultRateLimit is the per-client request budget per second.
const DefaultRateLimit = 20

// ErrCSRFKeyRequired is returned when production starts without a CSRF key.
var ErrCSRFKeyRequired = errors.New("CHURCH_CSRF_KEY is required in production")

// Global stores instance (set by NewMux)
var stores *repository.Repository

// Global session store instance
var sessions *middleware.SessionStore

// Global metrics recorder (set by NewMux)
var recorder *metrics.Recorder

// Global perf collector (set by NewMux; may be nil)
var perfCollector *perf.Collector

// Email configuration (set by NewMux)
var (
	emailSender  email.Sender
	emailFrom    string
	emailReplyTo string
)

// NewMux wires the API routes and middleware.
// PRE: cfg.Repo is non-nil
// POST: returns the handler and the rate limiter the caller should Stop on shutdown
func NewMux(cfg Config) (http.Handler, *middleware.RateLimiter, error) {
	stores = cfg.Repo
	recorder = cfg.Metrics
	if recorder == nil {
		recorder = metrics.New()
	}
	perfCollector = cfg.Collector
	emailSender = cfg.Sender
	if emailSender == nil {
		emailSender = email.NewLogSender()
	}
	emailFrom, emailReplyTo = cfg.EmailFrom, cfg.ReplyTo
	sessions = middleware.NewSessionStore()
	middleware.SecureCookies = cfg.Production

	key, err := csrfKey(cfg.CSRFKey, cfg.Production)
	if err != nil {
		return nil, nil, err
	}

	mux := http.NewServeMux()
	registerRoutes(mux)

	rate := cfg.RateLimit
	if rate <= 0 {
		rate = DefaultRateLimit
	}
	limiter := middleware.NewRateLimiter(rate, time.Second)

	// Timing -> RateLimit -> Auth -> CSRF -> SecurityHeaders -> Mux
	h := middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(key, cfg.Production, cfg.TrustedOrigins),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
		middleware.Timing(middleware.TimingConfig{
			SlowThreshold: cfg.SlowRequest,
			Collector:     cfg.Collector,
			Observer:      recorder,
		}),
	)
	return h, limiter, nil
}

// csrfKey returns the configured key, or a random one outside production.
func csrfKey(key []byte, production bool) ([]byte, error) {
	if len(key) == 32 {
		return key, nil
	}
	if len(key) != 0 {
		return nil, errors.New("CSRF key must be 32 bytes")
	}
	if production {
		return nil, ErrCSRFKeyRequired
	}
	key = make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	slog.Warn("csrf_key_random", "reason", "CHURCH_CSRF_KEY not set; form tokens will not survive restart")
	return key, nil
}

// DecodeCSRFKey parses the hex-encoded CHURCH_CSRF_KEY value.
func DecodeCSRFKey(keyHex string) ([]byte, error) {
	if keyHex == "" {
		return nil, nil
	}
	key, err := hex.DecodeString(keyHex)
	if err != nil || len(key) != 32 {
		return nil, errors.New("CHURCH_CSRF_KEY must be 64 hex characters (32 bytes)")
	}
	return key, nil
}
