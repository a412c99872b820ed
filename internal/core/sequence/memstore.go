package sequence

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is a mutex-guarded in-process Store. Suitable for tests and
// single-process deployments; the CAS contract is provided by the lock.
type MemoryStore struct {
	mu     sync.Mutex
	states map[string]State
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string]State)}
}

var (
	_ Store  = (*MemoryStore)(nil)
	_ Lister = (*MemoryStore)(nil)
)

// Read implements Store.
func (s *MemoryStore) Read(ctx context.Context, prefix string) (State, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.states[prefix]
	return state, ok, nil
}

// CompareAndAdvance implements Store. Equality of the guard covers the
// counter pair only; UpdatedAt is observability metadata.
func (s *MemoryStore) CompareAndAdvance(ctx context.Context, prefix string, expected *State, next State) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.states[prefix]
	if expected == nil {
		if ok {
			return false, nil
		}
		s.states[prefix] = next
		return true, nil
	}
	if !ok || current.Letters != expected.Letters || current.Number != expected.Number {
		return false, nil
	}
	s.states[prefix] = next
	return true, nil
}

// ForceSet implements Store.
func (s *MemoryStore) ForceSet(ctx context.Context, prefix string, next State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[prefix] = next
	return nil
}

// Seed places a raw state without any validation. Test helper: lets tests
// simulate corrupted storage.
func (s *MemoryStore) Seed(prefix string, state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[prefix] = state
}

// ListStates implements Lister, ordered by prefix.
func (s *MemoryStore) ListStates(ctx context.Context, limit, offset int) ([]State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefixes := make([]string, 0, len(s.states))
	for p := range s.states {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)

	if offset >= len(prefixes) {
		return []State{}, nil
	}
	prefixes = prefixes[offset:]
	if limit < len(prefixes) {
		prefixes = prefixes[:limit]
	}

	out := make([]State, 0, len(prefixes))
	for _, p := range prefixes {
		out = append(out, s.states[p])
	}
	return out, nil
}
