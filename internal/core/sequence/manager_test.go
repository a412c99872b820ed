package sequence

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stokado/internal/core/apperror"
)

func TestManager_Generate_FreshPrefix(t *testing.T) {
	m := NewManager(NewMemoryStore())
	ctx := context.Background()

	id, err := m.Generate(ctx, "CUS")
	require.NoError(t, err)
	assert.Equal(t, "CUS-AAA0001", id)

	id, err = m.Generate(ctx, "CUS")
	require.NoError(t, err)
	assert.Equal(t, "CUS-AAA0002", id)
}

func TestManager_Generate_NormalizesPrefix(t *testing.T) {
	m := NewManager(NewMemoryStore())
	ctx := context.Background()

	id, err := m.Generate(ctx, " cus ")
	require.NoError(t, err)
	assert.Equal(t, "CUS-AAA0001", id)

	// Same counter as the canonical form.
	id, err = m.Generate(ctx, "CUS")
	require.NoError(t, err)
	assert.Equal(t, "CUS-AAA0002", id)
}

func TestManager_Generate_InvalidPrefix(t *testing.T) {
	m := NewManager(NewMemoryStore())
	ctx := context.Background()

	for _, bad := range []string{"", "CU-S", "c s"} {
		_, err := m.Generate(ctx, bad)
		require.Error(t, err)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeInvalidPrefix, appErr.Code)
	}
}

func TestManager_Generate_PrefixesIndependent(t *testing.T) {
	m := NewManager(NewMemoryStore())
	ctx := context.Background()

	cus, err := m.Generate(ctx, "CUS")
	require.NoError(t, err)
	ven, err := m.Generate(ctx, "VEN")
	require.NoError(t, err)

	assert.Equal(t, "CUS-AAA0001", cus)
	assert.Equal(t, "VEN-AAA0001", ven)
}

func TestManager_Generate_NumberRollover(t *testing.T) {
	store := NewMemoryStore()
	store.Seed("CUS", State{Prefix: "CUS", Letters: "AAA", Number: MaxNumber})
	m := NewManager(store)

	id, err := m.Generate(context.Background(), "CUS")
	require.NoError(t, err)
	assert.Equal(t, "CUS-AAB0001", id)
}

func TestManager_Generate_LetterGrowth(t *testing.T) {
	store := NewMemoryStore()
	store.Seed("CUS", State{Prefix: "CUS", Letters: "ZZZ", Number: MaxNumber})
	m := NewManager(store)

	id, err := m.Generate(context.Background(), "CUS")
	require.NoError(t, err)
	assert.Equal(t, "CUS-AAAA0001", id)
}

func TestManager_Generate_HealsCorruptState(t *testing.T) {
	store := NewMemoryStore()
	store.Seed("CUS", State{Prefix: "CUS", Letters: "A1", Number: -3})

	var healedPrefix string
	var discarded State
	m := NewManager(store, WithHealNotifier(func(ctx context.Context, prefix string, bad State) {
		healedPrefix = prefix
		discarded = bad
	}))

	id, err := m.Generate(context.Background(), "CUS")
	require.NoError(t, err)
	assert.Equal(t, "CUS-AAA0001", id)

	assert.Equal(t, "CUS", healedPrefix)
	assert.Equal(t, "A1", discarded.Letters)
	assert.Equal(t, -3, discarded.Number)

	// The healed counter advances normally afterwards.
	id, err = m.Generate(context.Background(), "CUS")
	require.NoError(t, err)
	assert.Equal(t, "CUS-AAA0002", id)
}

func TestManager_Generate_Concurrent_NoDuplicates(t *testing.T) {
	const (
		workers = 20
		perWork = 25
	)

	m := NewManager(NewMemoryStore(), WithMaxAttempts(1000))
	ctx := context.Background()

	var (
		mu  sync.Mutex
		ids = make(map[string]struct{}, workers*perWork)
		wg  sync.WaitGroup
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWork; i++ {
				id, err := m.Generate(ctx, "CUS")
				if err != nil {
					t.Errorf("generate failed: %v", err)
					return
				}
				mu.Lock()
				if _, dup := ids[id]; dup {
					t.Errorf("duplicate identifier issued: %s", id)
				}
				ids[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, ids, workers*perWork)
}

func TestManager_GenerateBatch(t *testing.T) {
	m := NewManager(NewMemoryStore())
	ctx := context.Background()

	ids, err := m.GenerateBatch(ctx, "ITM", 5)
	require.NoError(t, err)
	require.Len(t, ids, 5)
	assert.Equal(t, []string{
		"ITM-AAA0001", "ITM-AAA0002", "ITM-AAA0003", "ITM-AAA0004", "ITM-AAA0005",
	}, ids)

	// A follow-up single generate continues after the reserved range.
	id, err := m.Generate(ctx, "ITM")
	require.NoError(t, err)
	assert.Equal(t, "ITM-AAA0006", id)
}

func TestManager_GenerateBatch_CrossesRollover(t *testing.T) {
	store := NewMemoryStore()
	store.Seed("ITM", State{Prefix: "ITM", Letters: "AAA", Number: MaxNumber - 1})
	m := NewManager(store)

	ids, err := m.GenerateBatch(context.Background(), "ITM", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"ITM-AAA9999", "ITM-AAB0001", "ITM-AAB0002"}, ids)
}

func TestManager_GenerateBatch_Limits(t *testing.T) {
	m := NewManager(NewMemoryStore())
	ctx := context.Background()

	_, err := m.GenerateBatch(ctx, "ITM", 0)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)

	_, err = m.GenerateBatch(ctx, "ITM", MaxBatchSize+1)
	require.Error(t, err)
	appErr, ok = apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)

	// The cap itself is allowed.
	ids, err := m.GenerateBatch(ctx, "ITM", MaxBatchSize)
	require.NoError(t, err)
	assert.Len(t, ids, MaxBatchSize)
}

// contendingStore rejects every compare-and-swap, simulating a counter
// under permanent contention.
type contendingStore struct {
	*MemoryStore
}

func (s *contendingStore) CompareAndAdvance(ctx context.Context, prefix string, expected *State, next State) (bool, error) {
	return false, nil
}

func TestManager_Generate_ContentionExhausted(t *testing.T) {
	m := NewManager(&contendingStore{NewMemoryStore()}, WithMaxAttempts(3))

	_, err := m.Generate(context.Background(), "CUS")
	require.Error(t, err)
	assert.True(t, apperror.IsSequenceContention(err))
}

func TestManager_Current(t *testing.T) {
	m := NewManager(NewMemoryStore())
	ctx := context.Background()

	_, err := m.Current(ctx, "CUS")
	assert.True(t, apperror.IsNotFound(err))

	_, err = m.Generate(ctx, "CUS")
	require.NoError(t, err)

	current, err := m.Current(ctx, "CUS")
	require.NoError(t, err)
	assert.Equal(t, "CUS-AAA0001", current)

	// Current does not advance.
	current, err = m.Current(ctx, "CUS")
	require.NoError(t, err)
	assert.Equal(t, "CUS-AAA0001", current)
}

func TestManager_Reset(t *testing.T) {
	m := NewManager(NewMemoryStore())
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := m.Generate(ctx, "CUS")
		require.NoError(t, err)
	}

	// Default reset returns to the first identifier.
	resetTo, err := m.Reset(ctx, "CUS", "")
	require.NoError(t, err)
	assert.Equal(t, "CUS-AAA0001", resetTo)

	id, err := m.Generate(ctx, "CUS")
	require.NoError(t, err)
	assert.Equal(t, "CUS-AAA0002", id)

	// Targeted reset.
	resetTo, err = m.Reset(ctx, "CUS", "CUS-ABC0100")
	require.NoError(t, err)
	assert.Equal(t, "CUS-ABC0100", resetTo)

	id, err = m.Generate(ctx, "CUS")
	require.NoError(t, err)
	assert.Equal(t, "CUS-ABC0101", id)
}

func TestManager_Reset_Invalid(t *testing.T) {
	m := NewManager(NewMemoryStore())
	ctx := context.Background()

	_, err := m.Reset(ctx, "CUS", "not-an-id")
	require.Error(t, err)

	// Target must carry the same prefix.
	_, err = m.Reset(ctx, "CUS", "VEN-AAA0001")
	require.Error(t, err)
}

func TestManager_PrefixStats(t *testing.T) {
	m := NewManager(NewMemoryStore())
	ctx := context.Background()

	stats, err := m.PrefixStats(ctx, "CUS")
	require.NoError(t, err)
	assert.False(t, stats.Exists)
	assert.Empty(t, stats.LatestID)

	_, err = m.Generate(ctx, "CUS")
	require.NoError(t, err)

	stats, err = m.PrefixStats(ctx, "CUS")
	require.NoError(t, err)
	assert.True(t, stats.Exists)
	assert.Equal(t, "CUS-AAA0001", stats.LatestID)
	require.NotNil(t, stats.UpdatedAt)
}

func TestManager_Prefixes(t *testing.T) {
	m := NewManager(NewMemoryStore())
	ctx := context.Background()

	for _, p := range []string{"VEN", "CUS", "ITM"} {
		_, err := m.Generate(ctx, p)
		require.NoError(t, err)
	}

	states, err := m.Prefixes(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, states, 3)
	assert.Equal(t, "CUS", states[0].Prefix)
	assert.Equal(t, "ITM", states[1].Prefix)
	assert.Equal(t, "VEN", states[2].Prefix)
}

func TestManager_HealthCheck(t *testing.T) {
	m := NewManager(NewMemoryStore())

	status := m.HealthCheck(context.Background())
	assert.True(t, status.Healthy())
	assert.Equal(t, HealthPrefix+"-AAA0001", status.SampleID)
	assert.False(t, status.CheckedAt.IsZero())
}

func TestManager_HealthCheck_Unhealthy(t *testing.T) {
	m := NewManager(&contendingStore{NewMemoryStore()}, WithMaxAttempts(2))

	status := m.HealthCheck(context.Background())
	assert.False(t, status.Healthy())
	assert.Empty(t, status.SampleID)
	assert.NotEmpty(t, status.Message)
}
