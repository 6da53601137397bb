package memstore

import (
	"sync"

	"churchportal/internal/adapters/storage"
)

// Placement decides where Insert puts a new record.
type Placement int

const (
	// Front keeps a newest-first feed.
	Front Placement = iota
	// Back keeps an append-order catalog.
	Back
)

// Collection is an ordered, concurrency-safe set of records keyed by id.
// Records are stored by value, so callers always receive copies.
type Collection[T any] struct {
	mu        sync.RWMutex
	items     []T
	idOf      func(T) string
	placement Placement
}

// New creates an empty collection.
// PRE: idOf returns a record's id
func New[T any](idOf func(T) string, placement Placement) *Collection[T] {
	return &Collection[T]{idOf: idOf, placement: placement}
}

// List returns a copy of the records in stored order.
// INVARIANT: the returned slice does not alias internal storage
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the record with id.
// POST: Returns storage.ErrNotFound if absent
func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], nil
	}
	var zero T
	return zero, storage.ErrNotFound
}

// Insert adds v at the collection's placement.
// PRE: v's id is non-empty
// POST: Returns storage.ErrDuplicateID if the id is taken
func (c *Collection[T]) Insert(v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.indexOf(c.idOf(v)) >= 0 {
		return storage.ErrDuplicateID
	}
	if c.placement == Front {
		c.items = append([]T{v}, c.items...)
		return nil
	}
	c.items = append(c.items, v)
	return nil
}

// Replace overwrites the record with v's id, keeping its position.
// POST: Returns storage.ErrNotFound if absent
func (c *Collection[T]) Replace(v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(c.idOf(v))
	if i < 0 {
		return storage.ErrNotFound
	}
	c.items[i] = v
	return nil
}

// Update applies fn to the record with id under the write lock.
// fn's error aborts the update and is returned unchanged.
// POST: Returns the stored record, or storage.ErrNotFound if absent
func (c *Collection[T]) Update(id string, fn func(*T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	i := c.indexOf(id)
	if i < 0 {
		return zero, storage.ErrNotFound
	}
	v := c.items[i]
	if err := fn(&v); err != nil {
		return zero, err
	}
	c.items[i] = v
	return v, nil
}

// Delete removes the record with id.
// POST: Returns true if a record was removed; a missing id is not an error
func (c *Collection[T]) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) indexOf(id string) int {
	for i, v := range c.items {
		if c.idOf(v) == id {
			return i
		}
	}
	return -1
}
