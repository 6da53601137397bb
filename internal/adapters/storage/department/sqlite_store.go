package department

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"churchportal/internal/adapters/storage"
	domain "churchportal/internal/domain/department"
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

// List returns all departments in insertion order.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Department, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, member_count FROM department ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []domain.Department{}
	for rows.Next() {
		var d domain.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.MemberCount); err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// GetByID retrieves a department by ID.
// POST: Returns the entity or storage.ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Department, error) {
	var d domain.Department
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, description, member_count FROM department WHERE id = ?`, id).
		Scan(&d.ID, &d.Name, &d.Description, &d.MemberCount)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Department{}, storage.ErrNotFound
	}
	return d, err
}

// Insert appends a department after every existing row.
func (s *SQLiteStore) Insert(ctx context.Context, d domain.Department) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO department (id, seq, name, description, member_count)
		 VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM department), ?, ?, ?)`,
		d.ID, d.Name, d.Description, d.MemberCount)
	return err
}

// Replace overwrites an existing department, keeping its position.
// POST: Returns storage.ErrNotFound if the id is unknown
func (s *SQLiteStore) Replace(ctx context.Context, d domain.Department) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE department SET name = ?, description = ?, member_count = ? WHERE id = ?`,
		d.Name, d.Description, d.MemberCount, d.ID)
	if err != nil {
		return err
	}
	return storage.RequireAffected(res)
}

// Delete removes a department by ID.
func (s *SQLiteStore) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM department WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Update loads a department, applies fn and writes it back.
// POST: Returns the stored department, storage.ErrNotFound, or fn's error with nothing written
func (s *SQLiteStore) Update(ctx context.Context, id string, fn func(*domain.Department) error) (domain.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.GetByID(ctx, id)
	if err != nil {
		return domain.Department{}, err
	}
	if err := fn(&d); err != nil {
		return domain.Department{}, err
	}
	if err := s.Replace(ctx, d); err != nil {
		return domain.Department{}, err
	}
	return d, nil
}
