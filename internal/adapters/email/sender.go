// Package email delivers announcement broadcasts to members.
package email

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNoRecipient = errors.New("email has no recipient")
	ErrNoSubject   = errors.New("email has no subject")
)

// SendRequest is one outbound message. From may be empty to use the sender's default.
type SendRequest struct {
	To      []string
	From    string
	ReplyTo string
	Subject string
	HTML    string
	// Tags label the message at the provider, e.g. announcement_id.
	Tags map[string]string
}

// Validate rejects requests the provider would bounce.
func (r SendRequest) Validate() error {
	if len(r.To) == 0 {
		return ErrNoRecipient
	}
	if r.Subject == "" {
		return ErrNoSubject
	}
	return nil
}

// SendResult is the provider's receipt for one message.
type SendResult struct {
	MessageID string
	SentAt    time.Time
}

// Sender delivers messages. SendBatch returns results in request order.
type Sender interface {
	Send(ctx context.Context, req SendRequest) (SendResult, error)
	SendBatch(ctx context.Context, reqs []SendRequest) ([]SendResult, error)
}
