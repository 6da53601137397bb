package projections

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"churchportal/internal/domain/account"
	"churchportal/internal/domain/announcement"
	"churchportal/internal/domain/department"
	"churchportal/internal/domain/event"
	"churchportal/internal/domain/sermon"
)

// DashboardQuery carries input for the dashboard projection.
type DashboardQuery struct {
	Role string // admin, leader, member
}

// DashboardDeps holds dependencies for the dashboard projection.
type DashboardDeps struct {
	AnnouncementStore AnnouncementStore
	EventStore        EventStore
	SermonStore       SermonStore
	DepartmentStore   DepartmentStore
}

// Permissions tells the client which management controls to show.
// The server checks roles again on every mutation.
type Permissions struct {
	CanManageContent bool `json:"can_manage_content"`
	CanManageFinance bool `json:"can_manage_finance"`
}

// DashboardResult carries the output of the dashboard projection.
type DashboardResult struct {
	Announcements []announcement.Announcement `json:"announcements"`
	Events        []event.Event               `json:"events"`
	Sermons       []sermon.Sermon             `json:"sermons"`
	Departments   []department.Department     `json:"departments"`
	Permissions   Permissions                 `json:"permissions"`
}

// QueryDashboard loads the four dashboard collections concurrently.
// PRE: all stores are set
// POST: either every collection is loaded or the first error is returned
func QueryDashboard(ctx context.Context, query DashboardQuery, deps DashboardDeps) (DashboardResult, error) {
	var res DashboardResult
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		res.Announcements, err = deps.AnnouncementStore.List(ctx)
		return wrap("announcements", err)
	})
	g.Go(func() (err error) {
		res.Events, err = deps.EventStore.List(ctx)
		return wrap("events", err)
	})
	g.Go(func() (err error) {
		res.Sermons, err = deps.SermonStore.List(ctx)
		return wrap("sermons", err)
	})
	g.Go(func() (err error) {
		res.Departments, err = deps.DepartmentStore.List(ctx)
		return wrap("departments", err)
	})

	if err := g.Wait(); err != nil {
		return DashboardResult{}, err
	}
	res.Permissions = Permissions{
		CanManageContent: account.CanManageContent(query.Role),
		CanManageFinance: account.CanManageFinance(query.Role),
	}
	return res, nil
}

func wrap(what string, err error) error {
	if err != nil {
		return fmt.Errorf("load %s: %w", what, err)
	}
	return nil
}
