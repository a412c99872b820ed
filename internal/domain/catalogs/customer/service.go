package customer

import (
	"context"
	"fmt"

	"stokado/internal/core/sequence"
	"stokado/internal/core/tx"
	"stokado/internal/domain"
)

// Service provides business logic for the Customer catalog.
// Common CRUD is delegated to the embedded generic service.
type Service struct {
	*domain.CatalogService[*Customer]
	repo      Repository
	sequencer sequence.Generator
}

// NewService creates a new Customer service.
func NewService(repo Repository, txm tx.Manager, sequencer sequence.Generator) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Customer]{
		Repo:       repo,
		TxManager:  txm,
		EntityName: "customer",
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

// prepareForCreate normalizes fields and assigns the business code.
func (s *Service) prepareForCreate(ctx context.Context, c *Customer) error {
	c.Normalize()

	if c.Code == "" {
		code, err := s.sequencer.Generate(ctx, Prefix)
		if err != nil {
			return fmt.Errorf("generate customer code: %w", err)
		}
		c.Code = code
	}

	return nil
}

func (s *Service) prepareForUpdate(ctx context.Context, c *Customer) error {
	c.Normalize()
	return nil
}
