package entity

import (
	"context"

	"stokado/internal/core/apperror"
)

// Catalog is the base type for reference data: customers, vendors,
// warehouses, inventory items.
type Catalog struct {
	BaseEntity

	// Code is the human-readable business identifier (e.g. CUS-AAA0001).
	// Assigned from the sequence generator when not supplied by the caller.
	Code string `db:"code" json:"code"`

	// Name is the display name
	Name string `db:"name" json:"name"`
}

// NewCatalog creates a new Catalog with generated ID.
func NewCatalog(code, name string) Catalog {
	return Catalog{
		BaseEntity: NewBaseEntity(),
		Code:       code,
		Name:       name,
	}
}

// Validate implements Validatable interface.
func (c *Catalog) Validate(ctx context.Context) error {
	if c.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}

	// Code is optional at creation: the before-create hook fills it from
	// the sequence generator.

	return nil
}
