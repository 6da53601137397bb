package member

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"churchportal/internal/adapters/storage"
	domain "churchportal/internal/domain/member"
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

const columns = `id, email, first_name, last_name, role, department`

// List returns all members in insertion order.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Member, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+columns+` FROM member ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []domain.Member{}
	for rows.Next() {
		var m domain.Member
		if err := scan(rows, &m); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// GetByID retrieves a member by ID.
// POST: Returns the entity or storage.ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Member, error) {
	var m domain.Member
	err := scan(s.db.QueryRowContext(ctx, `SELECT `+columns+` FROM member WHERE id = ?`, id), &m)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Member{}, storage.ErrNotFound
	}
	return m, err
}

// Insert appends a member after every existing row.
func (s *SQLiteStore) Insert(ctx context.Context, m domain.Member) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO member (id, seq, email, first_name, last_name, role, department)
		 VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM member), ?, ?, ?, ?, ?)`,
		m.ID, m.Email, m.FirstName, m.LastName, m.Role, m.Department)
	return err
}

// Replace overwrites an existing member, keeping its position.
// POST: Returns storage.ErrNotFound if the id is unknown
func (s *SQLiteStore) Replace(ctx context.Context, m domain.Member) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE member SET email = ?, first_name = ?, last_name = ?, role = ?, department = ? WHERE id = ?`,
		m.Email, m.FirstName, m.LastName, m.Role, m.Department, m.ID)
	if err != nil {
		return err
	}
	return storage.RequireAffected(res)
}

// Delete removes a member by ID.
func (s *SQLiteStore) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM member WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func scan(row storage.Scanner, m *domain.Member) error {
	return row.Scan(&m.ID, &m.Email, &m.FirstName, &m.LastName, &m.Role, &m.Department)
}

// Update loads a member, applies fn and writes it back.
// POST: Returns the stored member, storage.ErrNotFound, or fn's error with nothing written
func (s *SQLiteStore) Update(ctx context.Context, id string, fn func(*domain.Member) error) (domain.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.GetByID(ctx, id)
	if err != nil {
		return domain.Member{}, err
	}
	if err := fn(&m); err != nil {
		return domain.Member{}, err
	}
	if err := s.Replace(ctx, m); err != nil {
		return domain.Member{}, err
	}
	return m, nil
}
