package viewstate

import (
	"context"
	"fmt"
	"testing"
	"time"

	"churchportal/internal/adapters/storage/repository"
	"churchportal/internal/application/orchestrators"
	"churchportal/internal/application/projections"
	"churchportal/internal/domain/event"
)

var testTime = time.Date(2024, 1, 16, 9, 30, 0, 0, time.UTC)

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func servicesFor(repo *repository.Repository) Services {
	ids := sequentialIDs("id")
	return Services{
		Query: projections.DashboardDeps{
			AnnouncementStore: repo.Announcements,
			EventStore:        repo.Events,
			SermonStore:       repo.Sermons,
			DepartmentStore:   repo.Departments,
		},
		Announcements: orchestrators.AnnouncementDeps{
			AnnouncementStore: repo.Announcements,
			GenerateID:        ids,
			Now:               func() time.Time { return testTime },
		},
		Events:      orchestrators.EventDeps{EventStore: repo.Events, GenerateID: ids},
		Sermons:     orchestrators.SermonDeps{SermonStore: repo.Sermons, GenerateID: ids},
		Departments: orchestrators.DepartmentDeps{DepartmentStore: repo.Departments, GenerateID: ids},
	}
}

// januaryEvents stores the calendar fixtures used across tests.
func januaryEvents(t *testing.T, repo *repository.Repository) {
	t.Helper()
	events := []event.Event{
		{ID: "e1", Title: "Sabbath School", Date: "2024-01-13", Time: "09:30", Type: event.TypeRecurring, RSVP: 45},
		{ID: "e2", Title: "Prayer Meeting", Date: "2024-01-17", Time: "19:00", Type: event.TypeRecurring, RSVP: 12, MaxRSVP: 12},
	}
	for _, e := range events {
		if err := repo.Events.Insert(context.Background(), e); err != nil {
			t.Fatalf("insert %s: %v", e.ID, err)
		}
	}
}
