package warehouse

import (
	"context"
	"fmt"

	"stokado/internal/core/sequence"
	"stokado/internal/core/tx"
	"stokado/internal/domain"
)

// Service provides business logic for the Warehouse catalog.
type Service struct {
	*domain.CatalogService[*Warehouse]
	repo      Repository
	sequencer sequence.Generator
}

// NewService creates a new Warehouse service.
func NewService(repo Repository, txm tx.Manager, sequencer sequence.Generator) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Warehouse]{
		Repo:       repo,
		TxManager:  txm,
		EntityName: "warehouse",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		sequencer:      sequencer,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeUpdate(svc.prepareForUpdate)

	return svc
}

// prepareForCreate handles code generation and the default flag.
func (s *Service) prepareForCreate(ctx context.Context, wh *Warehouse) error {
	if wh.Code == "" {
		code, err := s.sequencer.Generate(ctx, Prefix)
		if err != nil {
			return fmt.Errorf("generate warehouse code: %w", err)
		}
		wh.Code = code
	}

	// If setting as default, clear other defaults first.
	if wh.IsDefault {
		if err := s.repo.ClearDefault(ctx); err != nil {
			return err
		}
	}

	return nil
}

func (s *Service) prepareForUpdate(ctx context.Context, wh *Warehouse) error {
	if wh.IsDefault {
		if err := s.repo.ClearDefault(ctx); err != nil {
			return err
		}
	}

	return nil
}
