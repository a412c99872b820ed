package item

import (
	"context"

	"stokado/internal/domain"
)

// Repository defines the interface for Item persistence.
type Repository interface {
	domain.CatalogRepository[*Item]

	// GetBySKU retrieves an item by stock-keeping unit.
	GetBySKU(ctx context.Context, sku string) (*Item, error)

	// ExistsBySKU checks SKU uniqueness before create.
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
}
