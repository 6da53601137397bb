package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"churchportal/internal/adapters/storage"
	domain "churchportal/internal/domain/account"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new account SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const selectAccount = "SELECT id, email, password_hash, role, first_name, last_name, department, created_at, failed_logins, locked_until FROM account"

// GetByID retrieves an Account by its ID.
// PRE: id is non-empty
// POST: Returns the entity or storage.ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Account, error) {
	row := s.db.QueryRowContext(ctx, selectAccount+" WHERE id = ?", id)
	return one(row)
}

// GetByEmail retrieves an Account by email, ignoring case.
// PRE: email is non-empty
// POST: Returns the entity or storage.ErrNotFound
func (s *SQLiteStore) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	row := s.db.QueryRowContext(ctx, selectAccount+" WHERE email = ?", email)
	return one(row)
}

// Save persists an Account (insert or update).
// PRE: entity has been validated
// POST: Returns storage.ErrDuplicateID if another account holds the email
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Account) error {
	if other, err := s.GetByEmail(ctx, entity.Email); err == nil && other.ID != entity.ID {
		return storage.ErrDuplicateID
	}

	fields := []string{"id", "email", "password_hash", "role", "first_name", "last_name", "department", "created_at", "failed_logins", "locked_until"}
	placeholders := strings.Repeat("?, ", len(fields)-1) + "?"
	updates := []string{
		"email=excluded.email",
		"password_hash=excluded.password_hash",
		"role=excluded.role",
		"first_name=excluded.first_name",
		"last_name=excluded.last_name",
		"department=excluded.department",
		"failed_logins=excluded.failed_logins",
		"locked_until=excluded.locked_until",
	}

	query := fmt.Sprintf(
		"INSERT INTO account (%s) VALUES (%s) ON CONFLICT(id) DO UPDATE SET %s",
		strings.Join(fields, ", "),
		placeholders,
		strings.Join(updates, ", "),
	)

	var lockedUntil any
	if !entity.LockedUntil.IsZero() {
		lockedUntil = entity.LockedUntil.Format(storage.TimeLayout)
	}

	_, err := s.db.ExecContext(ctx, query,
		entity.ID,
		entity.Email,
		entity.PasswordHash,
		entity.Role,
		entity.FirstName,
		entity.LastName,
		entity.Department,
		entity.CreatedAt.Format(storage.TimeLayout),
		entity.FailedLogins,
		lockedUntil,
	)
	return err
}

// List retrieves Accounts in creation order, optionally filtered by role.
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Account, error) {
	query := selectAccount
	var args []any
	if filter.Role != "" {
		query += " WHERE role = ?"
		args = append(args, filter.Role)
	}
	query += " ORDER BY created_at, rowid"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []domain.Account{}
	for rows.Next() {
		entity, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// Count returns the total number of accounts.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM account").Scan(&count)
	return count, err
}

func one(row storage.Scanner) (domain.Account, error) {
	entity, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Account{}, storage.ErrNotFound
	}
	return entity, err
}

func scanAccount(row storage.Scanner) (domain.Account, error) {
	var entity domain.Account
	var createdAt string
	var lockedUntil sql.NullString
	err := row.Scan(
		&entity.ID,
		&entity.Email,
		&entity.PasswordHash,
		&entity.Role,
		&entity.FirstName,
		&entity.LastName,
		&entity.Department,
		&createdAt,
		&entity.FailedLogins,
		&lockedUntil,
	)
	if err != nil {
		return domain.Account{}, err
	}
	if entity.CreatedAt, err = time.Parse(storage.TimeLayout, createdAt); err != nil {
		return domain.Account{}, fmt.Errorf("account %s created_at: %w", entity.ID, err)
	}
	if lockedUntil.Valid && lockedUntil.String != "" {
		if entity.LockedUntil, err = time.Parse(storage.TimeLayout, lockedUntil.String); err != nil {
			return domain.Account{}, fmt.Errorf("account %s locked_until: %w", entity.ID, err)
		}
	}
	return entity, nil
}
