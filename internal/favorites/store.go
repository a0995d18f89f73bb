package favorites

import (
	"slices"
	"sync"
)

// Store holds the saved items per category in insertion order.
// It is safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	items map[Category][]string
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		items: make(map[Category][]string, len(Categories)),
	}
}

// Add appends content to c unless an identical item is already there.
// It reports whether the item was added.
func (s *Store) Add(c Category, content string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.items[c], content) {
		return false
	}
	s.items[c] = append(s.items[c], content)
	return true
}

// Items returns a copy of the items saved under c.
func (s *Store) Items(c Category) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.items[c])
}

// Snapshot returns a copy of every non-empty category.
func (s *Store) Snapshot() map[Category][]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[Category][]string, len(s.items))
	for c, items := range s.items {
		if len(items) > 0 {
			out[c] = slices.Clone(items)
		}
	}
	return out
}

// Clear empties c.
func (s *Store) Clear(c Category) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, c)
}

// ClearAll empties every category.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.items)
}

// Len returns the number of items saved under c.
func (s *Store) Len(c Category) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items[c])
}
