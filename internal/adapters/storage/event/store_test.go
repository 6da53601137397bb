package event

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"churchportal/internal/adapters/storage"
	domain "churchportal/internal/domain/event"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()
	db, err := storage.OpenMemoryDB()
	if err != nil {
		t.Fatalf("OpenMemoryDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": NewSQLiteStore(db),
	}
}

// TestStore_RoundTrip keeps every field, including the zone of event_date.
func TestStore_RoundTrip(t *testing.T) {
	nzdt := time.FixedZone("", 13*60*60)
	want := domain.Event{
		ID:          "e1",
		Title:       "Youth Camp 2024",
		Description: "Annual youth camp",
		EventDate:   time.Date(2024, 2, 15, 9, 0, 0, 0, nzdt),
		Location:    "Pine Valley Camp",
		Organizer:   "Elder Brown",
		Date:        "2024-02-15",
		Time:        "09:00",
		Type:        domain.TypeSpecial,
		RSVP:        25,
		MaxRSVP:     50,
	}
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := s.Insert(ctx, want); err != nil {
				t.Fatalf("Insert: %v", err)
			}
			got, err := s.GetByID(ctx, "e1")
			if err != nil {
				t.Fatalf("GetByID: %v", err)
			}
			if !got.EventDate.Equal(want.EventDate) || got.EventDate.Format(domain.DateLayout) != "2024-02-15" {
				t.Errorf("EventDate = %v", got.EventDate)
			}
			got.EventDate = want.EventDate
			if got != want {
				t.Errorf("round trip = %+v, want %+v", got, want)
			}
		})
	}
}

// TestStore_Mutations covers ordering, replace, and delete.
func TestStore_Mutations(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s.Insert(ctx, domain.Event{ID: "a", Title: "A", Date: "2024-01-13", Type: domain.TypeRecurring})
			s.Insert(ctx, domain.Event{ID: "b", Title: "B", Date: "2024-01-17", Type: domain.TypeRecurring})

			list, _ := s.List(ctx)
			if len(list) != 2 || list[0].ID != "b" {
				t.Fatalf("order = %+v", list)
			}

			moved := list[1]
			moved.Date = "2024-01-20"
			moved.RSVP = 46
			if err := s.Replace(ctx, moved); err != nil {
				t.Fatalf("Replace: %v", err)
			}
			got, _ := s.GetByID(ctx, "a")
			if got.Date != "2024-01-20" || got.RSVP != 46 {
				t.Errorf("after replace = %+v", got)
			}
			if !got.EventDate.IsZero() {
				t.Errorf("zero EventDate became %v", got.EventDate)
			}

			if err := s.Replace(ctx, domain.Event{ID: "missing"}); !errors.Is(err, storage.ErrNotFound) {
				t.Errorf("Replace missing = %v", err)
			}
			if removed, _ := s.Delete(ctx, "missing"); removed {
				t.Error("Delete missing reported removal")
			}
			if removed, _ := s.Delete(ctx, "b"); !removed {
				t.Error("Delete(b) reported no removal")
			}
		})
	}
}

// TestStore_UpdateIsAtomic loses no increments under concurrent updates.
func TestStore_UpdateIsAtomic(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := s.Insert(ctx, domain.Event{ID: "e1", Title: "Sabbath School", Date: "2024-01-13", Type: domain.TypeRecurring, RSVP: 45, MaxRSVP: 100}); err != nil {
				t.Fatalf("Insert: %v", err)
			}

			var wg sync.WaitGroup
			for i := 0; i < 20; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					if _, err := s.Update(ctx, "e1", func(e *domain.Event) error { return e.AddRSVP() }); err != nil {
						t.Errorf("Update: %v", err)
					}
				}()
			}
			wg.Wait()

			got, _ := s.GetByID(ctx, "e1")
			if got.RSVP != 65 {
				t.Errorf("RSVP = %d, want 65", got.RSVP)
			}

			full := errors.New("stop")
			if _, err := s.Update(ctx, "e1", func(e *domain.Event) error { e.RSVP = 0; return full }); !errors.Is(err, full) {
				t.Errorf("Update error = %v, want fn's error", err)
			}
			if got, _ := s.GetByID(ctx, "e1"); got.RSVP != 65 {
				t.Errorf("aborted Update wrote RSVP = %d", got.RSVP)
			}
			if _, err := s.Update(ctx, "nope", func(*domain.Event) error { return nil }); !errors.Is(err, storage.ErrNotFound) {
				t.Errorf("Update missing = %v", err)
			}
		})
	}
}
