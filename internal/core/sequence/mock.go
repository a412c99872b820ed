package sequence

import (
	"context"
	"fmt"
	"sync"
)

// MockGenerator is a test implementation of Generator.
// Use in unit tests to avoid real counter state.
type MockGenerator struct {
	GenerateFunc      func(ctx context.Context, prefix string) (string, error)
	GenerateBatchFunc func(ctx context.Context, prefix string, count int) ([]string, error)

	mu   sync.Mutex
	seen map[string]int
}

// Generate implements Generator. Without a custom func it hands out
// predictable sequential identifiers per prefix.
func (m *MockGenerator) Generate(ctx context.Context, prefix string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prefix)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.seen == nil {
		m.seen = make(map[string]int)
	}
	m.seen[prefix]++
	return fmt.Sprintf("%s-AAA%04d", prefix, m.seen[prefix]), nil
}

// GenerateBatch implements Generator.
func (m *MockGenerator) GenerateBatch(ctx context.Context, prefix string, count int) ([]string, error) {
	if m.GenerateBatchFunc != nil {
		return m.GenerateBatchFunc(ctx, prefix, count)
	}
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id, err := m.Generate(ctx, prefix)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Ensure compile-time interface compliance.
var _ Generator = (*MockGenerator)(nil)
