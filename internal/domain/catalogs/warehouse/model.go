// Package warehouse provides the Warehouse catalog.
// Warehouses represent physical locations for storing goods.
package warehouse

import (
	"context"

	"stokado/internal/core/apperror"
	"stokado/internal/core/entity"
)

// Prefix is the sequence prefix for warehouse codes.
const Prefix = "WH"

// WarehouseType defines the type of warehouse.
type WarehouseType string

const (
	TypeMain         WarehouseType = "main"
	TypeDistribution WarehouseType = "distribution"
	TypeRetail       WarehouseType = "retail"
	TypeTransit      WarehouseType = "transit"
)

// Warehouse represents a storage location for goods.
type Warehouse struct {
	entity.Catalog

	// Type defines the warehouse category
	Type WarehouseType `db:"type" json:"type"`

	// Address is the physical address
	Address *string `db:"address" json:"address,omitempty"`

	// City for reporting and grouping
	City *string `db:"city" json:"city,omitempty"`

	// IsActive indicates the warehouse is operational
	IsActive bool `db:"is_active" json:"isActive"`

	// IsDefault indicates the default warehouse for new documents
	IsDefault bool `db:"is_default" json:"isDefault"`

	// Remarks is free-form operator text
	Remarks *string `db:"remarks" json:"remarks,omitempty"`
}

// NewWarehouse creates a new Warehouse with required fields.
func NewWarehouse(code, name string, whType WarehouseType) *Warehouse {
	return &Warehouse{
		Catalog:  entity.NewCatalog(code, name),
		Type:     whType,
		IsActive: true,
	}
}

// Validate implements entity.Validatable.
func (w *Warehouse) Validate(ctx context.Context) error {
	if err := w.Catalog.Validate(ctx); err != nil {
		return err
	}

	if !isValidWarehouseType(w.Type) {
		return apperror.NewValidation("invalid warehouse type").
			WithDetail("field", "type").
			WithDetail("value", string(w.Type))
	}

	return nil
}

// CanAcceptStock returns true if the warehouse can receive goods.
func (w *Warehouse) CanAcceptStock() bool {
	return w.IsActive
}

func isValidWarehouseType(t WarehouseType) bool {
	switch t {
	case TypeMain, TypeDistribution, TypeRetail, TypeTransit:
		return true
	}
	return false
}
