package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"

	emailAdapter "churchportal/internal/adapters/email"
	"churchportal/internal/domain/announcement"
	"churchportal/internal/domain/member"
)

// ErrNoRecipients is returned when no member has an email address to send to.
var ErrNoRecipients = errors.New("no members to send the announcement to")

// BroadcastDeps holds dependencies for BroadcastAnnouncement.
type BroadcastDeps struct {
	AnnouncementStore interface {
		GetByID(ctx context.Context, id string) (announcement.Announcement, error)
	}
	MemberStore interface {
		List(ctx context.Context) ([]member.Member, error)
	}
	Sender     emailAdapter.Sender
	RenderHTML func(md string) (string, error)
	From       string
	ReplyTo    string
	Observer   MutationObserver
}

// BroadcastResult summarizes a broadcast.
type BroadcastResult struct {
	AnnouncementID string `json:"announcement_id"`
	Recipients     int    `json:"recipients"`
}

// ExecuteBroadcastAnnouncement emails an announcement to every member, one message each.
// PRE: announcement exists; at least one member
// POST: one SendRequest per member via SendBatch; storage.ErrNotFound if the announcement is missing
func ExecuteBroadcastAnnouncement(ctx context.Context, announcementID string, deps BroadcastDeps) (BroadcastResult, error) {
	a, err := deps.AnnouncementStore.GetByID(ctx, announcementID)
	if err != nil {
		return BroadcastResult{}, err
	}
	members, err := deps.MemberStore.List(ctx)
	if err != nil {
		return BroadcastResult{}, err
	}
	if len(members) == 0 {
		return BroadcastResult{}, ErrNoRecipients
	}

	body, err := deps.RenderHTML(a.Content)
	if err != nil {
		return BroadcastResult{}, fmt.Errorf("render announcement %s: %w", a.ID, err)
	}
	page := fmt.Sprintf("<h2>%s</h2>\n%s\n<p><em>%s</em></p>",
		html.EscapeString(a.Title), body, html.EscapeString(a.Author))

	reqs := make([]emailAdapter.SendRequest, 0, len(members))
	for _, m := range members {
		reqs = append(reqs, emailAdapter.SendRequest{
			To:      []string{m.Email},
			From:    deps.From,
			Subject: a.Title,
			HTML:    page,
			ReplyTo: deps.ReplyTo,
			Tags:    map[string]string{"announcement_id": a.ID},
		})
	}
	if _, err := deps.Sender.SendBatch(ctx, reqs); err != nil {
		slog.Error("announcement_event", "event", "broadcast_failed", "announcement_id", a.ID, "error", err)
		return BroadcastResult{}, err
	}

	observe(deps.Observer, "announcement", "broadcast")
	slog.Info("announcement_event", "event", "announcement_broadcast", "announcement_id", a.ID, "recipients", len(reqs))
	return BroadcastResult{AnnouncementID: a.ID, Recipients: len(reqs)}, nil
}
