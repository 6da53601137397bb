package sermon

import (
	"context"
	"errors"
	"testing"

	"churchportal/internal/adapters/storage"
	domain "churchportal/internal/domain/sermon"
)

// TestStore_Contract runs the shared store contract on both implementations.
func TestStore_Contract(t *testing.T) {
	db, err := storage.OpenMemoryDB()
	if err != nil {
		t.Fatalf("OpenMemoryDB: %v", err)
	}
	defer db.Close()

	for name, s := range map[string]Store{"memory": NewMemoryStore(), "sqlite": NewSQLiteStore(db)} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s.Insert(ctx, domain.Sermon{ID: "3", Title: "Hope in Jesus", Speaker: "Pastor Johnson", SermonDate: "2023-12-30", VideoURL: "https://example.com/video3"})
			s.Insert(ctx, domain.Sermon{ID: "1", Title: "The Love of Christ", Speaker: "Pastor Johnson", SermonDate: "2024-01-13"})

			list, err := s.List(ctx)
			if err != nil || len(list) != 2 || list[0].ID != "1" {
				t.Fatalf("List = %+v, %v", list, err)
			}
			if list[1].VideoURL != "https://example.com/video3" {
				t.Errorf("VideoURL = %q", list[1].VideoURL)
			}

			edited := list[0]
			edited.Scripture = "John 3:16"
			if err := s.Replace(ctx, edited); err != nil {
				t.Fatalf("Replace: %v", err)
			}
			got, _ := s.GetByID(ctx, "1")
			if got.Scripture != "John 3:16" {
				t.Errorf("Scripture = %q", got.Scripture)
			}
			if _, err := s.GetByID(ctx, "9"); !errors.Is(err, storage.ErrNotFound) {
				t.Errorf("GetByID missing = %v", err)
			}
			if removed, err := s.Delete(ctx, "3"); err != nil || !removed {
				t.Errorf("Delete = %v, %v", removed, err)
			}
		})
	}
}
