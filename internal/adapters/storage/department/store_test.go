package department

import (
	"context"
	"errors"
	"testing"

	"churchportal/internal/adapters/storage"
	domain "churchportal/internal/domain/department"
)

// TestStore_CatalogOrder appends new departments at the back.
func TestStore_CatalogOrder(t *testing.T) {
	db, err := storage.OpenMemoryDB()
	if err != nil {
		t.Fatalf("OpenMemoryDB: %v", err)
	}
	defer db.Close()

	for name, s := range map[string]Store{"memory": NewMemoryStore(), "sqlite": NewSQLiteStore(db)} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			names := []string{"Sabbath School", "Youth Ministries", "Health Ministries", "Family Ministries"}
			for i, n := range names {
				if err := s.Insert(ctx, domain.Department{ID: string(rune('a' + i)), Name: n, MemberCount: 10 * i}); err != nil {
					t.Fatalf("Insert: %v", err)
				}
			}
			list, err := s.List(ctx)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			for i, d := range list {
				if d.Name != names[i] {
					t.Errorf("list[%d] = %q, want %q", i, d.Name, names[i])
				}
			}

			youth := list[1]
			youth.MemberCount = 29
			if err := s.Replace(ctx, youth); err != nil {
				t.Fatalf("Replace: %v", err)
			}
			if got, _ := s.GetByID(ctx, "b"); got.MemberCount != 29 {
				t.Errorf("MemberCount = %d, want 29", got.MemberCount)
			}
			if err := s.Replace(ctx, domain.Department{ID: "z", Name: "Ghost"}); !errors.Is(err, storage.ErrNotFound) {
				t.Errorf("Replace missing = %v", err)
			}

			s.Delete(ctx, "a")
			s.Insert(ctx, domain.Department{ID: "e", Name: "Pathfinders"})
			list, _ = s.List(ctx)
			if list[len(list)-1].Name != "Pathfinders" {
				t.Errorf("last = %q, want Pathfinders", list[len(list)-1].Name)
			}
		})
	}
}
