package sequence

import (
	"context"
	"time"

	"stokado/internal/core/apperror"
	"stokado/pkg/logger"
)

const (
	// defaultMaxAttempts bounds the internal compare-and-swap retry loop.
	// The advance is cheap, so retries run back to back without sleeping.
	defaultMaxAttempts = 5

	// MaxBatchSize caps a single bulk reservation.
	MaxBatchSize = 1000
)

// HealFunc is notified after a malformed stored state has been overwritten
// with the default. Used to feed the audit trail; failures are ignored.
type HealFunc func(ctx context.Context, prefix string, discarded State)

// Manager is the only component that mutates sequence state. It guarantees
// exactly-once issuance under arbitrary concurrency: every advance goes
// through the store's compare-and-swap, losers re-read and retry against the
// new current value. Worst case a value is skipped, never duplicated.
type Manager struct {
	store       Store
	maxAttempts int
	onHeal      HealFunc
}

// Option configures a Manager.
type Option func(*Manager)

// WithMaxAttempts overrides the contention retry bound.
func WithMaxAttempts(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.maxAttempts = n
		}
	}
}

// WithHealNotifier registers a callback for corruption-healing events.
func WithHealNotifier(fn HealFunc) Option {
	return func(m *Manager) { m.onHeal = fn }
}

// NewManager creates a sequence manager on top of a Store.
func NewManager(store Store, opts ...Option) *Manager {
	m := &Manager{
		store:       store,
		maxAttempts: defaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Compile-time check that Manager satisfies the issuing contract.
var _ Generator = (*Manager)(nil)

// Generate returns the next identifier for a prefix.
//
// Errors: InvalidPrefix for rejected prefixes, SequenceContention when the
// retry bound is exhausted (transient, the caller may retry the whole call),
// storage errors propagate unchanged.
func (m *Manager) Generate(ctx context.Context, prefix string) (string, error) {
	ids, err := m.advance(ctx, prefix, 1)
	if err != nil {
		return "", err
	}
	return ids[0], nil
}

// GenerateBatch reserves count consecutive identifiers in one atomic advance.
// No other caller can receive an identifier inside the reserved range: the
// store moves from the originally-read state directly past the whole range.
func (m *Manager) GenerateBatch(ctx context.Context, prefix string, count int) ([]string, error) {
	if count < 1 {
		return nil, apperror.NewValidation("count must be at least 1").
			WithDetail("count", count)
	}
	if count > MaxBatchSize {
		return nil, apperror.NewValidation("batch size limit exceeded").
			WithDetail("count", count).
			WithDetail("max", MaxBatchSize)
	}
	return m.advance(ctx, prefix, count)
}

// advance implements the shared read / compute / compare-and-swap loop.
func (m *Manager) advance(ctx context.Context, prefix string, count int) ([]string, error) {
	p, err := NormalizePrefix(prefix)
	if err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= m.maxAttempts; attempt++ {
		current, found, err := m.store.Read(ctx, p)
		if err != nil {
			return nil, err
		}

		// nil expected tells the store "create only if still absent",
		// which makes the first advance for a prefix race-safe too.
		var expected *State
		if !found {
			current = initialState(p)
		} else if !current.WellFormed() {
			return m.heal(ctx, p, current, count)
		} else {
			snapshot := current
			expected = &snapshot
		}

		// Compute the chain of successor states. For count == 1 this is
		// the plain "next"; for a batch it may cross letter rollovers.
		ids := make([]string, 0, count)
		next := current
		for i := 0; i < count; i++ {
			next = Next(next)
			ids = append(ids, Format(p, next.Letters, next.Number))
		}
		next.UpdatedAt = time.Now().UTC()

		ok, err := m.store.CompareAndAdvance(ctx, p, expected, next)
		if err != nil {
			return nil, err
		}
		if ok {
			return ids, nil
		}
		// Lost the race: another caller advanced first. Re-read and retry.
	}

	logger.Warn(ctx, "sequence contention bound exhausted",
		"prefix", p,
		"attempts", m.maxAttempts,
	)
	return nil, apperror.NewSequenceContention(p, m.maxAttempts)
}

// heal overwrites a malformed stored state with the default {AAA, 1} and
// issues identifiers from there. Nothing of the corrupt value is preserved:
// monotonicity across a corruption event is sacrificed, well-formedness of
// every identifier issued afterwards is not.
func (m *Manager) heal(ctx context.Context, prefix string, bad State, count int) ([]string, error) {
	// count is capped by MaxBatchSize, so the healed batch always fits
	// inside the first letters value.
	healed := State{
		Prefix:    prefix,
		Letters:   DefaultLetters,
		Number:    count,
		UpdatedAt: time.Now().UTC(),
	}

	if err := m.store.ForceSet(ctx, prefix, healed); err != nil {
		return nil, err
	}

	logger.Warn(ctx, "malformed sequence state healed",
		"prefix", prefix,
		"discarded_letters", bad.Letters,
		"discarded_number", bad.Number,
	)
	if m.onHeal != nil {
		m.onHeal(ctx, prefix, bad)
	}

	ids := make([]string, 0, count)
	s := State{Prefix: prefix, Letters: DefaultLetters, Number: 0}
	for i := 0; i < count; i++ {
		s = Next(s)
		ids = append(ids, Format(prefix, s.Letters, s.Number))
	}
	return ids, nil
}

// Current returns the most recently issued identifier for a prefix without
// advancing the counter.
func (m *Manager) Current(ctx context.Context, prefix string) (string, error) {
	p, err := NormalizePrefix(prefix)
	if err != nil {
		return "", err
	}
	state, found, err := m.store.Read(ctx, p)
	if err != nil {
		return "", err
	}
	if !found {
		return "", apperror.NewNotFound("sequence", p)
	}
	if !state.WellFormed() || state.Number == 0 {
		return "", apperror.NewNotFound("sequence", p)
	}
	return Format(p, state.Letters, state.Number), nil
}

// Reset administratively overwrites the counter for a prefix. An empty
// resetTo resets to the default; otherwise resetTo must be a well-formed
// identifier for the same prefix. Outside normal operation: the strictly-
// increasing guarantee does not span a reset.
func (m *Manager) Reset(ctx context.Context, prefix, resetTo string) (string, error) {
	p, err := NormalizePrefix(prefix)
	if err != nil {
		return "", err
	}

	target := State{Prefix: p, Letters: DefaultLetters, Number: 1}
	if resetTo != "" {
		rp, letters, number, err := Parse(resetTo)
		if err != nil {
			return "", apperror.NewValidation("reset target is not a well-formed identifier").
				WithDetail("resetTo", resetTo)
		}
		if rp != p {
			return "", apperror.NewValidation("reset target must match the prefix").
				WithDetail("prefix", p).
				WithDetail("resetTo", resetTo)
		}
		target.Letters, target.Number = letters, number
	}
	target.UpdatedAt = time.Now().UTC()

	if err := m.store.ForceSet(ctx, p, target); err != nil {
		return "", err
	}
	logger.Info(ctx, "sequence reset",
		"prefix", p,
		"target", Format(p, target.Letters, target.Number),
	)
	return Format(p, target.Letters, target.Number), nil
}

// Stats describes the current counter for one prefix.
type Stats struct {
	Prefix    string     `json:"prefix"`
	Exists    bool       `json:"exists"`
	LatestID  string     `json:"latestId,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// PrefixStats reports the counter position for a prefix.
func (m *Manager) PrefixStats(ctx context.Context, prefix string) (Stats, error) {
	p, err := NormalizePrefix(prefix)
	if err != nil {
		return Stats{}, err
	}
	state, found, err := m.store.Read(ctx, p)
	if err != nil {
		return Stats{}, err
	}
	st := Stats{Prefix: p, Exists: found}
	if found && state.WellFormed() && state.Number > 0 {
		st.LatestID = Format(p, state.Letters, state.Number)
		t := state.UpdatedAt
		st.UpdatedAt = &t
	}
	return st, nil
}

// Prefixes lists known counters. Requires a store that implements Lister.
func (m *Manager) Prefixes(ctx context.Context, limit, offset int) ([]State, error) {
	lister, ok := m.store.(Lister)
	if !ok {
		return nil, apperror.NewInternal(nil).
			WithDetail("reason", "store does not support listing")
	}
	if limit <= 0 {
		limit = 100
	}
	return lister.ListStates(ctx, limit, offset)
}
