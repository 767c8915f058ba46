package store

import (
	"context"
	"slices"
	"strings"
	"sync"
)

// MemoryStore keeps trees in a map. Contents are lost on shutdown.
type MemoryStore struct {
	mu    sync.RWMutex
	trees map[string]Tree
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{trees: make(map[string]Tree)}
}

func (s *MemoryStore) Get(ctx context.Context, name string) (*Tree, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.trees[name]
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (s *MemoryStore) Put(ctx context.Context, t *Tree) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trees[t.Name] = *t
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.trees[name]; !ok {
		return ErrNotFound
	}
	delete(s.trees, name)
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]Tree, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Tree, 0, len(s.trees))
	for _, t := range s.trees {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b Tree) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
