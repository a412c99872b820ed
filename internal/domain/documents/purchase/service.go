package purchase

import (
	"context"
	"fmt"

	"stokado/internal/core/apperror"
	"stokado/internal/core/id"
	"stokado/internal/core/sequence"
	"stokado/internal/core/tx"
	"stokado/internal/domain"
	"stokado/pkg/logger"
)

// Service provides business logic for purchase transactions.
type Service struct {
	repo      Repository
	txManager tx.Manager
	sequencer sequence.Generator
	audit     domain.AuditRecorder
}

// NewService creates a new purchase transaction service.
// audit may be nil; recording is then skipped.
func NewService(repo Repository, txm tx.Manager, sequencer sequence.Generator, audit domain.AuditRecorder) *Service {
	return &Service{
		repo:      repo,
		txManager: txm,
		sequencer: sequencer,
		audit:     audit,
	}
}

// Create validates and persists a new draft transaction. The document
// number is assigned from the sequence generator before the insert, outside
// the transaction: a failed insert may burn a number, which is harmless.
func (s *Service) Create(ctx context.Context, t *Transaction) error {
	t.RecalculateTotals()
	if err := t.Validate(ctx); err != nil {
		return err
	}

	if t.Number == "" {
		number, err := s.sequencer.Generate(ctx, Prefix)
		if err != nil {
			return fmt.Errorf("generate purchase number: %w", err)
		}
		t.Number = number
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, t)
	})
	if err != nil {
		return err
	}

	s.record(ctx, t, "create")
	return nil
}

// GetByID retrieves a transaction with lines.
func (s *Service) GetByID(ctx context.Context, txID id.ID) (*Transaction, error) {
	t, err := s.repo.GetByID(ctx, txID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("purchase transaction", txID.String())
		}
		return nil, err
	}
	return t, nil
}

// GetByNumber retrieves a transaction by business number.
func (s *Service) GetByNumber(ctx context.Context, number string) (*Transaction, error) {
	t, err := s.repo.GetByNumber(ctx, number)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("purchase transaction", number)
		}
		return nil, err
	}
	return t, nil
}

// List retrieves transactions with filtering and pagination.
func (s *Service) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Transaction], error) {
	if filter.Limit <= 0 {
		filter.Limit = domain.DefaultListFilter().Limit
	}
	if filter.OrderBy == "" || filter.OrderBy == "name" {
		filter.OrderBy = "-date"
	}
	return s.repo.List(ctx, filter)
}

// Update rewrites a draft transaction. Confirmed and later documents are
// immutable apart from status transitions.
func (s *Service) Update(ctx context.Context, t *Transaction) error {
	existing, err := s.GetByID(ctx, t.ID)
	if err != nil {
		return err
	}
	if !existing.IsEditable() {
		return apperror.NewBusinessRule(apperror.CodeBusinessRule,
			"only draft transactions can be edited").
			WithDetail("status", string(existing.Status))
	}

	t.Number = existing.Number // number never changes after assignment
	t.RecalculateTotals()
	if err := t.Validate(ctx); err != nil {
		return err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, t)
	})
	if err != nil {
		return err
	}

	s.record(ctx, t, "update")
	return nil
}

// Confirm moves a draft transaction to confirmed.
func (s *Service) Confirm(ctx context.Context, txID id.ID) (*Transaction, error) {
	return s.transition(ctx, txID, "confirm", (*Transaction).Confirm)
}

// Complete moves a confirmed transaction to completed.
func (s *Service) Complete(ctx context.Context, txID id.ID) (*Transaction, error) {
	return s.transition(ctx, txID, "complete", (*Transaction).Complete)
}

// Cancel voids a draft or confirmed transaction.
func (s *Service) Cancel(ctx context.Context, txID id.ID) (*Transaction, error) {
	return s.transition(ctx, txID, "cancel", (*Transaction).Cancel)
}

func (s *Service) transition(ctx context.Context, txID id.ID, action string, apply func(*Transaction) error) (*Transaction, error) {
	var t *Transaction
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		t, err = s.repo.GetByID(ctx, txID)
		if err != nil {
			return err
		}
		if err := apply(t); err != nil {
			return err
		}
		return s.repo.Update(ctx, t)
	})
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("purchase transaction", txID.String())
		}
		return nil, err
	}

	s.record(ctx, t, action)
	return t, nil
}

// record writes an audit entry; failures are logged, never returned.
func (s *Service) record(ctx context.Context, t *Transaction, action string) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(ctx, "purchase_transaction", t.ID, action, t); err != nil {
		logger.Warn(ctx, "audit record failed",
			"entity", "purchase_transaction",
			"action", action,
			"error", err,
		)
	}
}
