// Package repository bundles the per-kind stores the portal composes its services from.
package repository

import (
	"churchportal/internal/adapters/storage"
	"churchportal/internal/adapters/storage/account"
	"churchportal/internal/adapters/storage/announcement"
	"churchportal/internal/adapters/storage/department"
	"churchportal/internal/adapters/storage/event"
	"churchportal/internal/adapters/storage/livestream"
	"churchportal/internal/adapters/storage/member"
	"churchportal/internal/adapters/storage/sermon"
	"churchportal/internal/adapters/storage/treasury"
)

// Repository holds one store per entity kind. It owns no state of its own.
type Repository struct {
	Announcements announcement.Store
	Events        event.Store
	Sermons       sermon.Store
	Departments   department.Store
	Members       member.Store
	Accounts      account.Store
	Live          livestream.Store
	Treasury      treasury.Store
}

// NewMemory creates a Repository backed entirely by in-process collections.
// POST: every store is empty
func NewMemory() *Repository {
	return &Repository{
		Announcements: announcement.NewMemoryStore(),
		Events:        event.NewMemoryStore(),
		Sermons:       sermon.NewMemoryStore(),
		Departments:   department.NewMemoryStore(),
		Members:       member.NewMemoryStore(),
		Accounts:      account.NewMemoryStore(),
		Live:          livestream.NewMemoryStore(),
		Treasury:      treasury.NewMemoryStore(),
	}
}

// NewSQLite creates a Repository whose entity collections live in db.
// Live stream and treasury state stay in process memory.
// PRE: db schema has been created with storage.InitDB
func NewSQLite(db storage.SQLDB) *Repository {
	return &Repository{
		Announcements: announcement.NewSQLiteStore(db),
		Events:        event.NewSQLiteStore(db),
		Sermons:       sermon.NewSQLiteStore(db),
		Departments:   department.NewSQLiteStore(db),
		Members:       member.NewSQLiteStore(db),
		Accounts:      account.NewSQLiteStore(db),
		Live:          livestream.NewMemoryStore(),
		Treasury:      treasury.NewMemoryStore(),
	}
}
