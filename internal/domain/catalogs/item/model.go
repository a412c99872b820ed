// Package item provides the inventory item master catalog: the goods that
// purchase and sales transactions move.
package item

import (
	"context"
	"strings"

	"stokado/internal/core/apperror"
	"stokado/internal/core/entity"
	"stokado/internal/core/types"
)

// Prefix is the sequence prefix for item codes.
const Prefix = "ITM"

// Item represents an inventory item master record.
type Item struct {
	entity.Catalog

	// SKU is the stock-keeping unit (unique, operator-assigned)
	SKU string `db:"sku" json:"sku"`

	// Description of the item
	Description *string `db:"description" json:"description,omitempty"`

	// Unit is the unit of measurement code (e.g. "pcs", "kg")
	Unit string `db:"unit" json:"unit"`

	// PurchasePrice is the default buying price
	PurchasePrice types.Money `db:"purchase_price" json:"purchasePrice"`

	// SalePrice is the default selling price
	SalePrice types.Money `db:"sale_price" json:"salePrice"`

	// ReorderLevel triggers replenishment reporting
	ReorderLevel types.Quantity `db:"reorder_level" json:"reorderLevel"`

	// IsActive indicates the item can appear in new documents
	IsActive bool `db:"is_active" json:"isActive"`
}

// NewItem creates a new inventory item with required fields.
func NewItem(code, name, sku string) *Item {
	return &Item{
		Catalog:  entity.NewCatalog(code, name),
		SKU:      sku,
		Unit:     "pcs",
		IsActive: true,
	}
}

// Validate implements entity.Validatable.
func (i *Item) Validate(ctx context.Context) error {
	if err := i.Catalog.Validate(ctx); err != nil {
		return err
	}

	if strings.TrimSpace(i.SKU) == "" {
		return apperror.NewValidation("sku is required").
			WithDetail("field", "sku")
	}

	if i.Unit == "" {
		return apperror.NewValidation("unit is required").
			WithDetail("field", "unit")
	}

	if i.PurchasePrice.IsNegative() || i.SalePrice.IsNegative() {
		return apperror.NewValidation("prices cannot be negative").
			WithDetail("purchasePrice", i.PurchasePrice).
			WithDetail("salePrice", i.SalePrice)
	}

	if i.ReorderLevel.IsNegative() {
		return apperror.NewValidation("reorder level cannot be negative").
			WithDetail("field", "reorderLevel")
	}

	return nil
}

// Normalize trims and uppercases the SKU.
func (i *Item) Normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.SKU = strings.ToUpper(strings.TrimSpace(i.SKU))
	i.Unit = strings.TrimSpace(i.Unit)
}
