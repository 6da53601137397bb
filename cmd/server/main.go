package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/collectors"

	emailPkg "churchportal/internal/adapters/email"
	web "churchportal/internal/adapters/http"
	"churchportal/internal/adapters/http/metrics"
	"churchportal/internal/adapters/http/perf"
	"churchportal/internal/adapters/storage"
	"churchportal/internal/adapters/storage/repository"
	"churchportal/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// A missing .env is fine; the environment may already be set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("failed to load .env: %v", err)
	}

	env := envOrDefault("CHURCH_ENV", "development")
	production := env == "production"
	if !production {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	collector := perf.NewCollector(perf.DefaultRingSize)
	repo, closeStore, err := openRepository(envOrDefault("CHURCH_STORE", "memory"), collector)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer closeStore()

	ctx := context.Background()

	adminEmail := envOrDefault("CHURCH_ADMIN_EMAIL", orchestrators.DefaultAdminEmail)
	adminPassword := envOrDefault("CHURCH_ADMIN_PASSWORD", orchestrators.DefaultAdminPassword)
	if production && adminPassword == orchestrators.DefaultAdminPassword {
		log.Fatal("CHURCH_ADMIN_PASSWORD must be changed in production")
	}
	if err := orchestrators.ExecuteSeedAccounts(ctx, orchestrators.AccountSeedDeps{
		AccountStore:  repo.Accounts,
		GenerateID:    web.NewRecordID,
		Now:           time.Now,
		AdminEmail:    adminEmail,
		AdminPassword: adminPassword,
	}); err != nil {
		log.Fatalf("failed to seed accounts: %v", err)
	}

	if err := orchestrators.ExecuteSeedFixtures(ctx, orchestrators.SeedFixturesDeps{
		Announcements:  repo.Announcements,
		Events:         repo.Events,
		Sermons:        repo.Sermons,
		Departments:    repo.Departments,
		Members:        repo.Members,
		Live:           repo.Live,
		Treasury:       repo.Treasury,
		GenerateID:     web.NewRecordID,
		GenerateChatID: web.NewChatID,
		Now:            time.Now,
	}); err != nil {
		log.Fatalf("failed to seed fixtures: %v", err)
	}

	emailFrom := envOrDefault("CHURCH_RESEND_FROM", "Grace Church <news@church.com>")
	var sender emailPkg.Sender
	if key := os.Getenv("CHURCH_RESEND_KEY"); key != "" {
		sender = emailPkg.NewResendSender(key, emailFrom)
		log.Println("Email sender configured (Resend)")
	} else {
		sender = emailPkg.NewLogSender()
		if production {
			log.Println("WARNING: CHURCH_RESEND_KEY is not set; announcement broadcasts are only logged")
		}
	}

	csrfKey, err := web.DecodeCSRFKey(os.Getenv("CHURCH_CSRF_KEY"))
	if err != nil {
		log.Fatal(err)
	}

	recorder := metrics.New()
	recorder.Registry().MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	handler, limiter, err := web.NewMux(web.Config{
		Repo:           repo,
		Metrics:        recorder,
		Collector:      collector,
		Sender:         sender,
		EmailFrom:      emailFrom,
		ReplyTo:        os.Getenv("CHURCH_REPLY_TO"),
		CSRFKey:        csrfKey,
		Production:     production,
		TrustedOrigins: splitList(os.Getenv("CHURCH_TRUSTED_ORIGINS")),
		SlowRequest:    envMillis("CHURCH_SLOW_REQUEST_MS"),
	})
	if err != nil {
		log.Fatalf("failed to build server: %v", err)
	}
	defer limiter.Stop()

	addr := envOrDefault("CHURCH_ADDR", ":8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	stop, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()
	go func() {
		<-stop.Done()
		shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
		defer done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown_failed", "error", err)
		}
	}()

	log.Printf("Church portal %s starting on %s (env=%s)", version, addr, env)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server failed: %v", err)
	}
}

// openRepository selects the backing store: "memory" (default) or "sqlite",
// an in-memory SQLite database instrumented with the perf collector.
func openRepository(kind string, collector *perf.Collector) (*repository.Repository, func(), error) {
	switch kind {
	case "memory":
		return repository.NewMemory(), func() {}, nil
	case "sqlite":
		db, err := storage.OpenMemoryDB()
		if err != nil {
			return nil, nil, err
		}
		timed := storage.NewTimedDB(db, collector, envMillis("CHURCH_SLOW_QUERY_MS"))
		log.Println("Using in-memory SQLite store")
		return repository.NewSQLite(timed), func() { db.Close() }, nil
	}
	return nil, nil, errors.New("CHURCH_STORE must be memory or sqlite, got " + strconv.Quote(kind))
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envMillis reads a positive millisecond count; zero means unset or invalid.
func envMillis(key string) time.Duration {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Millisecond
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
