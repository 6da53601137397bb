package event

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"churchportal/internal/adapters/storage"
	domain "churchportal/internal/domain/event"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
	// mu serializes Update's read-modify-write.
	mu sync.Mutex
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const columns = `id, title, description, event_date, location, organizer, date, time, type, rsvp, max_rsvp`

// List returns all events in stored order.
// POST: Rows ordered by seq ascending
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Event, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+columns+` FROM event ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []domain.Event{}
	for rows.Next() {
		e, err := scan(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// GetByID retrieves an event by ID.
// PRE: id is non-empty
// POST: Returns the entity or storage.ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Event, error) {
	e, err := scan(s.db.QueryRowContext(ctx, `SELECT `+columns+` FROM event WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Event{}, storage.ErrNotFound
	}
	return e, err
}

// Insert adds an event ahead of every existing row.
// PRE: entity has been validated and carries a fresh id
func (s *SQLiteStore) Insert(ctx context.Context, e domain.Event) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO event (id, seq, title, description, event_date, location, organizer, date, time, type, rsvp, max_rsvp)
		 VALUES (?, (SELECT COALESCE(MIN(seq), 0) - 1 FROM event), ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Title, e.Description, nullableTime(e.EventDate), e.Location, e.Organizer,
		e.Date, e.Time, e.Type, e.RSVP, e.MaxRSVP)
	return err
}

// Replace overwrites an existing event, keeping its position.
// POST: Returns storage.ErrNotFound if the id is unknown
func (s *SQLiteStore) Replace(ctx context.Context, e domain.Event) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE event SET title = ?, description = ?, event_date = ?, location = ?, organizer = ?,
		   date = ?, time = ?, type = ?, rsvp = ?, max_rsvp = ?
		 WHERE id = ?`,
		e.Title, e.Description, nullableTime(e.EventDate), e.Location, e.Organizer,
		e.Date, e.Time, e.Type, e.RSVP, e.MaxRSVP, e.ID)
	if err != nil {
		return err
	}
	return storage.RequireAffected(res)
}

// Delete removes an event by ID.
// POST: Returns false without error when nothing matched
func (s *SQLiteStore) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM event WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func scan(row storage.Scanner) (domain.Event, error) {
	var e domain.Event
	var eventDate sql.NullString
	if err := row.Scan(&e.ID, &e.Title, &e.Description, &eventDate, &e.Location, &e.Organizer,
		&e.Date, &e.Time, &e.Type, &e.RSVP, &e.MaxRSVP); err != nil {
		return domain.Event{}, err
	}
	if eventDate.Valid && eventDate.String != "" {
		t, err := time.Parse(storage.TimeLayout, eventDate.String)
		if err != nil {
			return domain.Event{}, err
		}
		e.EventDate = t
	}
	return e, nil
}

func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(storage.TimeLayout)
}

// Update loads an event, applies fn and writes it back.
// POST: Returns the stored event, storage.ErrNotFound, or fn's error with nothing written
func (s *SQLiteStore) Update(ctx context.Context, id string, fn func(*domain.Event) error) (domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.GetByID(ctx, id)
	if err != nil {
		return domain.Event{}, err
	}
	if err := fn(&e); err != nil {
		return domain.Event{}, err
	}
	if err := s.Replace(ctx, e); err != nil {
		return domain.Event{}, err
	}
	return e, nil
}
