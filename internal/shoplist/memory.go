package shoplist

import (
	"context"
	"sync"
)

// MemoryStore is the in-memory mock backend. Handlers run concurrently, so
// access goes through a mutex.
type MemoryStore struct {
	mu    sync.RWMutex
	lists []List
}

// NewMemoryStore returns a store pre-populated with the fixed seed.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{}
	s.Reset()
	return s
}

// NewEmptyMemoryStore returns a store with no records, for tests.
func NewEmptyMemoryStore() *MemoryStore {
	return &MemoryStore{lists: []List{}}
}

// Reset discards all records and restores the seed dataset.
func (s *MemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists = SeedLists()
}

// List returns a snapshot of all lists.
func (s *MemoryStore) List(ctx context.Context) ([]List, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]List, 0, len(s.lists))
	for _, l := range s.lists {
		out = append(out, l.Clone())
	}
	return out, nil
}

// Get returns the list with the given id or ErrNotFound.
func (s *MemoryStore) Get(ctx context.Context, id int) (List, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.lists {
		if l.ID == id {
			return l.Clone(), nil
		}
	}
	return List{}, ErrNotFound
}

// Create assigns the next id, applies payload defaults and appends the record.
func (s *MemoryStore) Create(ctx context.Context, input CreateInput) (List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := input.Normalize()
	list.ID = s.nextIDLocked()
	s.lists = append(s.lists, list.Clone())
	return list, nil
}

// Update shallow-merges the patch over the stored record.
func (s *MemoryStore) Update(ctx context.Context, id int, patch Patch) (List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.lists {
		if l.ID == id {
			updated := patch.Merge(l)
			s.lists[i] = updated.Clone()
			return updated, nil
		}
	}
	return List{}, ErrNotFound
}

// Remove deletes the record or reports ErrNotFound.
func (s *MemoryStore) Remove(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.lists {
		if l.ID == id {
			s.lists = append(s.lists[:i], s.lists[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) nextIDLocked() int {
	max := 0
	for _, l := range s.lists {
		if l.ID > max {
			max = l.ID
		}
	}
	return max + 1
}
