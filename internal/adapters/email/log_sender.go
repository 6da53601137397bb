package email

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// LogSender logs sends instead of delivering them and keeps what it was given.
// It is the sender used when no Resend key is configured.
type LogSender struct {
	mu   sync.Mutex
	sent []SendRequest
	seq  int
}

// NewLogSender creates a new LogSender.
func NewLogSender() *LogSender {
	return &LogSender{}
}

// Send logs the email but does not deliver it.
func (s *LogSender) Send(_ context.Context, req SendRequest) (SendResult, error) {
	if err := req.Validate(); err != nil {
		return SendResult{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record(req), nil
}

// SendBatch logs each email but does not deliver.
// POST: one result per request, in order; nothing is recorded if any request is invalid
func (s *LogSender) SendBatch(_ context.Context, reqs []SendRequest) ([]SendResult, error) {
	for _, req := range reqs {
		if err := req.Validate(); err != nil {
			return nil, err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	results := make([]SendResult, 0, len(reqs))
	for _, req := range reqs {
		results = append(results, s.record(req))
	}
	return results, nil
}

// Sent returns a copy of every request handled so far.
func (s *LogSender) Sent() []SendRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]SendRequest(nil), s.sent...)
}

func (s *LogSender) record(req SendRequest) SendResult {
	s.seq++
	s.sent = append(s.sent, req)
	slog.Info("email_logged", "to", req.To, "subject", req.Subject, "tags", req.Tags)
	return SendResult{MessageID: fmt.Sprintf("log-%d", s.seq), SentAt: time.Now()}
}
