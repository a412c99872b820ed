package sequence

import "context"

// Store is the durable counter storage, keyed by prefix. Correctness of the
// whole package rests on CompareAndAdvance being atomic; any backend that
// honors that contract works (a relational table, a key-value store, or the
// in-process MemoryStore).
type Store interface {
	// Read returns the current state for a prefix.
	// found is false when the prefix has never been advanced.
	Read(ctx context.Context, prefix string) (state State, found bool, err error)

	// CompareAndAdvance atomically replaces the stored state with next,
	// but only if the stored state still equals expected. A nil expected
	// means "create, but only if the prefix does not exist yet".
	// Returns false (without error) when the guard fails.
	CompareAndAdvance(ctx context.Context, prefix string, expected *State, next State) (bool, error)

	// ForceSet unconditionally overwrites the stored state. Used only by
	// the corruption-healing path and administrative resets.
	ForceSet(ctx context.Context, prefix string, next State) error
}

// Lister is implemented by stores that can enumerate known prefixes.
// Optional: only the administrative listing endpoint needs it.
type Lister interface {
	ListStates(ctx context.Context, limit, offset int) ([]State, error)
}

// Generator is the issuing contract consumed by business-entity services.
// Manager is the production implementation.
type Generator interface {
	// Generate returns the next identifier for a prefix.
	Generate(ctx context.Context, prefix string) (string, error)

	// GenerateBatch reserves count consecutive identifiers in one atomic
	// advance and returns them in increasing order.
	GenerateBatch(ctx context.Context, prefix string, count int) ([]string, error)
}
