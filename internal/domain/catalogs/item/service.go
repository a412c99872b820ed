package item

import (
	"context"
	"fmt"

	"stokado/internal/core/apperror"
	"stokado/internal/core/sequence"
	"stokado/internal/core/tx"
	"stokado/internal/domain"
)

// Service provides business logic for the inventory item catalog.
type Service struct {
	*domain.CatalogService[*Item]
	repo      Repository
	sequencer sequence.Generator
}

// NewService creates a new Item service.
func NewService(repo Repository, txm tx.Manager, sequencer sequence.Generator) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Item]{
		Repo:       repo,
		TxManager:  txm,
		EntityName: "item",
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

// prepareForCreate normalizes, enforces SKU uniqueness and assigns the code.
func (s *Service) prepareForCreate(ctx context.Context, it *Item) error {
	it.Normalize()

	exists, err := s.repo.ExistsBySKU(ctx, it.SKU)
	if err != nil {
		return fmt.Errorf("check sku uniqueness: %w", err)
	}
	if exists {
		return apperror.NewDuplicate("item", "sku", it.SKU)
	}

	if it.Code == "" {
		code, err := s.sequencer.Generate(ctx, Prefix)
		if err != nil {
			return fmt.Errorf("generate item code: %w", err)
		}
		it.Code = code
	}

	return nil
}

func (s *Service) prepareForUpdate(ctx context.Context, it *Item) error {
	it.Normalize()
	return nil
}

// GetBySKU retrieves an item by stock-keeping unit.
func (s *Service) GetBySKU(ctx context.Context, sku string) (*Item, error) {
	it, err := s.repo.GetBySKU(ctx, sku)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("item", sku)
		}
		return nil, err
	}
	return it, nil
}
