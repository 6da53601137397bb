package projections

import (
	"context"

	"churchportal/internal/domain/announcement"
	"churchportal/internal/domain/department"
	"churchportal/internal/domain/event"
	"churchportal/internal/domain/livestream"
	"churchportal/internal/domain/member"
	"churchportal/internal/domain/sermon"
	"churchportal/internal/domain/treasury"
)

// AnnouncementStore interface for announcement queries.
type AnnouncementStore interface {
	List(ctx context.Context) ([]announcement.Announcement, error)
}

// EventStore interface for event queries.
type EventStore interface {
	List(ctx context.Context) ([]event.Event, error)
}

// SermonStore interface for sermon queries.
type SermonStore interface {
	List(ctx context.Context) ([]sermon.Sermon, error)
}

// DepartmentStore interface for department queries.
type DepartmentStore interface {
	List(ctx context.Context) ([]department.Department, error)
}

// MemberStore interface for member queries.
type MemberStore interface {
	List(ctx context.Context) ([]member.Member, error)
}

// LiveStore interface for live stream queries.
type LiveStore interface {
	Stream(ctx context.Context) (livestream.Stream, error)
	Messages(ctx context.Context, limit int) ([]livestream.ChatMessage, error)
}

// TreasuryStore interface for treasury queries.
type TreasuryStore interface {
	ListContributions(ctx context.Context) ([]treasury.Contribution, error)
	ListBudgets(ctx context.Context) ([]treasury.Budget, error)
	ListReports(ctx context.Context) ([]treasury.Report, error)
}
