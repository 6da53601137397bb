package sermon

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"churchportal/internal/adapters/storage"
	domain "churchportal/internal/domain/sermon"
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

const columns = `id, title, speaker, scripture, sermon_date, audio_url, video_url`

// List returns all sermons in stored order.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Sermon, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+columns+` FROM sermon ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []domain.Sermon{}
	for rows.Next() {
		var sm domain.Sermon
		if err := scan(rows, &sm); err != nil {
			return nil, err
		}
		list = append(list, sm)
	}
	return list, rows.Err()
}

// GetByID retrieves a sermon by ID.
// POST: Returns the entity or storage.ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Sermon, error) {
	var sm domain.Sermon
	err := scan(s.db.QueryRowContext(ctx, `SELECT `+columns+` FROM sermon WHERE id = ?`, id), &sm)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Sermon{}, storage.ErrNotFound
	}
	return sm, err
}

// Insert adds a sermon ahead of every existing row.
func (s *SQLiteStore) Insert(ctx context.Context, sm domain.Sermon) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sermon (id, seq, title, speaker, scripture, sermon_date, audio_url, video_url)
		 VALUES (?, (SELECT COALESCE(MIN(seq), 0) - 1 FROM sermon), ?, ?, ?, ?, ?, ?)`,
		sm.ID, sm.Title, sm.Speaker, sm.Scripture, sm.SermonDate, sm.AudioURL, sm.VideoURL)
	return err
}

// Replace overwrites an existing sermon, keeping its position.
// POST: Returns storage.ErrNotFound if the id is unknown
func (s *SQLiteStore) Replace(ctx context.Context, sm domain.Sermon) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE sermon SET title = ?, speaker = ?, scripture = ?, sermon_date = ?, audio_url = ?, video_url = ?
		 WHERE id = ?`,
		sm.Title, sm.Speaker, sm.Scripture, sm.SermonDate, sm.AudioURL, sm.VideoURL, sm.ID)
	if err != nil {
		return err
	}
	return storage.RequireAffected(res)
}

// Delete removes a sermon by ID.
func (s *SQLiteStore) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sermon WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func scan(row storage.Scanner, sm *domain.Sermon) error {
	return row.Scan(&sm.ID, &sm.Title, &sm.Speaker, &sm.Scripture, &sm.SermonDate, &sm.AudioURL, &sm.VideoURL)
}

// Update loads a sermon, applies fn and writes it back.
// POST: Returns the stored sermon, storage.ErrNotFound, or fn's error with nothing written
func (s *SQLiteStore) Update(ctx context.Context, id string, fn func(*domain.Sermon) error) (domain.Sermon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sm, err := s.GetByID(ctx, id)
	if err != nil {
		return domain.Sermon{}, err
	}
	if err := fn(&sm); err != nil {
		return domain.Sermon{}, err
	}
	if err := s.Replace(ctx, sm); err != nil {
		return domain.Sermon{}, err
	}
	return sm, nil
}
