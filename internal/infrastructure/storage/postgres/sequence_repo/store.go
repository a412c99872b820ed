// Package sequence_repo provides the PostgreSQL implementation of the
// sequence counter store. One row per prefix in seq_states; atomicity of
// CompareAndAdvance comes from conditional single-statement writes, no
// row locks or advisory locks are needed.
package sequence_repo

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	"stokado/internal/core/sequence"
	"stokado/internal/infrastructure/storage/postgres"
)

// Store implements sequence.Store backed by the seq_states table.
type Store struct {
	txManager *postgres.TxManager
}

var (
	_ sequence.Store  = (*Store)(nil)
	_ sequence.Lister = (*Store)(nil)
)

// NewStore creates a PostgreSQL sequence store.
func NewStore(txManager *postgres.TxManager) *Store {
	return &Store{txManager: txManager}
}

// Read implements sequence.Store.
func (s *Store) Read(ctx context.Context, prefix string) (sequence.State, bool, error) {
	var state sequence.State

	querier := s.txManager.GetQuerier(ctx)
	err := pgxscan.Get(ctx, querier, &state, `
		SELECT prefix, letters, number, updated_at
		FROM seq_states
		WHERE prefix = $1
	`, prefix)
	if err != nil {
		if pgxscan.NotFound(err) {
			return sequence.State{}, false, nil
		}
		return sequence.State{}, false, fmt.Errorf("read sequence state: %w", err)
	}

	return state, true, nil
}

// CompareAndAdvance implements sequence.Store.
//
// A nil expected maps to INSERT .. ON CONFLICT DO NOTHING: exactly one of
// the racing creators gets RowsAffected=1. A non-nil expected maps to a
// conditional UPDATE whose WHERE clause carries the guard; a concurrent
// advance makes the guard miss and the statement affects zero rows.
func (s *Store) CompareAndAdvance(ctx context.Context, prefix string, expected *sequence.State, next sequence.State) (bool, error) {
	querier := s.txManager.GetQuerier(ctx)

	if expected == nil {
		tag, err := querier.Exec(ctx, `
			INSERT INTO seq_states (prefix, letters, number, updated_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (prefix) DO NOTHING
		`, prefix, next.Letters, next.Number, next.UpdatedAt)
		if err != nil {
			return false, fmt.Errorf("insert sequence state: %w", err)
		}
		return tag.RowsAffected() == 1, nil
	}

	tag, err := querier.Exec(ctx, `
		UPDATE seq_states
		SET letters = $1, number = $2, updated_at = $3
		WHERE prefix = $4 AND letters = $5 AND number = $6
	`, next.Letters, next.Number, next.UpdatedAt, prefix, expected.Letters, expected.Number)
	if err != nil {
		return false, fmt.Errorf("advance sequence state: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ForceSet implements sequence.Store. Upsert without a guard; reserved for
// healing and administrative resets.
func (s *Store) ForceSet(ctx context.Context, prefix string, next sequence.State) error {
	querier := s.txManager.GetQuerier(ctx)

	_, err := querier.Exec(ctx, `
		INSERT INTO seq_states (prefix, letters, number, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (prefix) DO UPDATE
		SET letters = EXCLUDED.letters,
		    number = EXCLUDED.number,
		    updated_at = EXCLUDED.updated_at
	`, prefix, next.Letters, next.Number, next.UpdatedAt)
	if err != nil {
		return fmt.Errorf("force set sequence state: %w", err)
	}
	return nil
}

// ListStates implements sequence.Lister, ordered by prefix.
func (s *Store) ListStates(ctx context.Context, limit, offset int) ([]sequence.State, error) {
	var states []sequence.State

	querier := s.txManager.GetQuerier(ctx)
	err := pgxscan.Select(ctx, querier, &states, `
		SELECT prefix, letters, number, updated_at
		FROM seq_states
		ORDER BY prefix
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sequence states: %w", err)
	}

	return states, nil
}
