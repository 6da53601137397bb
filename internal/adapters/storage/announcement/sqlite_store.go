package announcement

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"churchportal/internal/adapters/storage"
	domain "churchportal/internal/domain/announcement"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
	mu sync.Mutex
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const columns = `id, title, content, author, created_at`

// List returns all announcements, newest first.
// POST: Rows ordered by seq ascending
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Announcement, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+columns+` FROM announcement ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []domain.Announcement{}
	for rows.Next() {
		a, err := scan(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// GetByID retrieves an announcement by ID.
// PRE: id is non-empty
// POST: Returns the entity or storage.ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Announcement, error) {
	a, err := scan(s.db.QueryRowContext(ctx, `SELECT `+columns+` FROM announcement WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Announcement{}, storage.ErrNotFound
	}
	return a, err
}

// Insert adds an announcement ahead of every existing row.
// PRE: entity has been validated and carries a fresh id
func (s *SQLiteStore) Insert(ctx context.Context, a domain.Announcement) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO announcement (id, seq, title, content, author, created_at)
		 VALUES (?, (SELECT COALESCE(MIN(seq), 0) - 1 FROM announcement), ?, ?, ?, ?)`,
		a.ID, a.Title, a.Content, a.Author, a.CreatedAt.Format(storage.TimeLayout))
	return err
}

// Replace overwrites an existing announcement, keeping its position.
// POST: Returns storage.ErrNotFound if the id is unknown
func (s *SQLiteStore) Replace(ctx context.Context, a domain.Announcement) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE announcement SET title = ?, content = ?, author = ?, created_at = ? WHERE id = ?`,
		a.Title, a.Content, a.Author, a.CreatedAt.Format(storage.TimeLayout), a.ID)
	if err != nil {
		return err
	}
	return storage.RequireAffected(res)
}

// Delete removes an announcement by ID.
// POST: Returns false without error when nothing matched
func (s *SQLiteStore) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM announcement WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func scan(row storage.Scanner) (domain.Announcement, error) {
	var a domain.Announcement
	var createdAt string
	if err := row.Scan(&a.ID, &a.Title, &a.Content, &a.Author, &createdAt); err != nil {
		return domain.Announcement{}, err
	}
	t, err := time.Parse(storage.TimeLayout, createdAt)
	if err != nil {
		return domain.Announcement{}, err
	}
	a.CreatedAt = t
	return a, nil
}

// Update loads a announcement, applies fn and writes it back.
// POST: Returns the stored announcement, storage.ErrNotFound, or fn's error with nothing written
func (s *SQLiteStore) Update(ctx context.Context, id string, fn func(*domain.Announcement) error) (domain.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.GetByID(ctx, id)
	if err != nil {
		return domain.Announcement{}, err
	}
	if err := fn(&a); err != nil {
		return domain.Announcement{}, err
	}
	if err := s.Replace(ctx, a); err != nil {
		return domain.Announcement{}, err
	}
	return a, nil
}
