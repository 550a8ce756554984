package database

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore implements Store with in-process maps
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]*memoryCollection
	closed      bool
}

type memoryCollection struct {
	records map[int]Record
	lastID  int
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]*memoryCollection),
	}
}

// collection returns the named collection, creating it when missing.
// Callers must hold the write lock.
func (m *MemoryStore) collection(name string) *memoryCollection {
	c, ok := m.collections[name]
	if !ok {
		c = &memoryCollection{records: make(map[int]Record)}
		m.collections[name] = c
	}
	return c
}

// Get returns all records in the collection ordered by id
func (m *MemoryStore) Get(ctx context.Context, collection string) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrConnection
	}

	c, ok := m.collections[collection]
	if !ok {
		return []Record{}, nil
	}

	ids := make([]int, 0, len(c.records))
	for id := range c.records {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]Record, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.records[id].clone())
	}
	return out, nil
}

// GetByID returns a single record
func (m *MemoryStore) GetByID(ctx context.Context, collection string, id int) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrConnection
	}

	c, ok := m.collections[collection]
	if !ok {
		return nil, ErrNotFound
	}
	rec, ok := c.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return rec.clone(), nil
}

// Create stores a copy of obj under the next id
func (m *MemoryStore) Create(ctx context.Context, collection string, obj Record) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrConnection
	}

	c := m.collection(collection)
	c.lastID++

	rec := obj.withoutID()
	rec[IDField] = c.lastID
	c.records[c.lastID] = rec

	return rec.clone(), nil
}

// UpdateByID merges patch into an existing record
func (m *MemoryStore) UpdateByID(ctx context.Context, collection string, id int, patch Record) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrConnection
	}

	c, ok := m.collections[collection]
	if !ok {
		return nil, ErrNotFound
	}
	rec, ok := c.records[id]
	if !ok {
		return nil, ErrNotFound
	}

	for k, v := range patch.withoutID() {
		rec[k] = v
	}
	return rec.clone(), nil
}

// DeleteByID removes a record
func (m *MemoryStore) DeleteByID(ctx context.Context, collection string, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrConnection
	}

	c, ok := m.collections[collection]
	if !ok {
		return ErrNotFound
	}
	if _, ok := c.records[id]; !ok {
		return ErrNotFound
	}
	delete(c.records, id)
	return nil
}

// Ping reports whether the store is open
func (m *MemoryStore) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return ErrConnection
	}
	return nil
}

// Close marks the store closed; later calls fail with ErrConnection
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}
