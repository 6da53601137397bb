package projections

import (
	"context"

	"churchportal/internal/domain/announcement"
	"churchportal/internal/domain/department"
	"churchportal/internal/domain/event"
	"churchportal/internal/domain/member"
	"churchportal/internal/domain/sermon"
)

// ListDeps holds the stores the list queries read from. Each query uses one.
type ListDeps struct {
	AnnouncementStore AnnouncementStore
	EventStore        EventStore
	SermonStore       SermonStore
	DepartmentStore   DepartmentStore
	MemberStore       MemberStore
}

// QueryListAnnouncements returns the announcement feed, newest first.
// POST: the slice is a snapshot; mutating it does not touch the store
func QueryListAnnouncements(ctx context.Context, deps ListDeps) ([]announcement.Announcement, error) {
	return deps.AnnouncementStore.List(ctx)
}

// QueryListEvents returns the event feed, newest first.
func QueryListEvents(ctx context.Context, deps ListDeps) ([]event.Event, error) {
	return deps.EventStore.List(ctx)
}

// QueryListSermons returns the sermon library, newest first.
func QueryListSermons(ctx context.Context, deps ListDeps) ([]sermon.Sermon, error) {
	return deps.SermonStore.List(ctx)
}

// QueryListDepartments returns the department catalog in insertion order.
func QueryListDepartments(ctx context.Context, deps ListDeps) ([]department.Department, error) {
	return deps.DepartmentStore.List(ctx)
}

// QueryListMembers returns the member directory in insertion order.
func QueryListMembers(ctx context.Context, deps ListDeps) ([]member.Member, error) {
	return deps.MemberStore.List(ctx)
}
