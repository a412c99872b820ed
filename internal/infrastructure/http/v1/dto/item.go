package dto

import (
	"stokado/internal/core/types"
	"stokado/internal/domain/catalogs/item"
)

// ItemResponse is the API representation of an inventory item.
type ItemResponse struct {
	CatalogResponse
	SKU           string  `json:"sku"`
	Description   *string `json:"description,omitempty"`
	Unit          string  `json:"unit"`
	PurchasePrice string  `json:"purchasePrice"`
	SalePrice     string  `json:"salePrice"`
	ReorderLevel  float64 `json:"reorderLevel"`
	IsActive      bool    `json:"isActive"`
}

// FromItem creates ItemResponse from the domain entity. Prices are rendered
// as decimal strings, never floats.
func FromItem(i *item.Item) ItemResponse {
	return ItemResponse{
		CatalogResponse: FromCatalog(i.Catalog),
		SKU:             i.SKU,
		Description:     i.Description,
		Unit:            i.Unit,
		PurchasePrice:   i.PurchasePrice.String(),
		SalePrice:       i.SalePrice.String(),
		ReorderLevel:    i.ReorderLevel.Float64(),
		IsActive:        i.IsActive,
	}
}

// CreateItemRequest for creating items. Code is optional; when omitted the
// server assigns the next ITM identifier. SKU is required and unique.
type CreateItemRequest struct {
	Code          string  `json:"code"`
	Name          string  `json:"name" binding:"required"`
	SKU           string  `json:"sku" binding:"required"`
	Description   *string `json:"description"`
	Unit          string  `json:"unit"`
	PurchasePrice string  `json:"purchasePrice"`
	SalePrice     string  `json:"salePrice"`
	ReorderLevel  float64 `json:"reorderLevel"`
}

// ToEntity converts the request to a domain entity. Invalid decimal strings
// surface later through entity validation as zero values are substituted.
func (r CreateItemRequest) ToEntity() (*item.Item, error) {
	i := item.NewItem(r.Code, r.Name, r.SKU)
	i.Description = r.Description
	if r.Unit != "" {
		i.Unit = r.Unit
	}
	if r.PurchasePrice != "" {
		p, err := types.NewMoneyFromString(r.PurchasePrice)
		if err != nil {
			return nil, err
		}
		i.PurchasePrice = p
	}
	if r.SalePrice != "" {
		p, err := types.NewMoneyFromString(r.SalePrice)
		if err != nil {
			return nil, err
		}
		i.SalePrice = p
	}
	i.ReorderLevel = types.NewQuantityFromFloat64(r.ReorderLevel)
	return i, nil
}

// UpdateItemRequest for updating items. Nil fields are left as-is.
// SKU is immutable after creation.
type UpdateItemRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Unit          *string  `json:"unit"`
	PurchasePrice *string  `json:"purchasePrice"`
	SalePrice     *string  `json:"salePrice"`
	ReorderLevel  *float64 `json:"reorderLevel"`
	IsActive      *bool    `json:"isActive"`
}

// ApplyTo overlays the request onto an existing entity.
func (r UpdateItemRequest) ApplyTo(i *item.Item) error {
	if r.Name != nil {
		i.Name = *r.Name
	}
	if r.Description != nil {
		i.Description = r.Description
	}
	if r.Unit != nil {
		i.Unit = *r.Unit
	}
	if r.PurchasePrice != nil {
		p, err := types.NewMoneyFromString(*r.PurchasePrice)
		if err != nil {
			return err
		}
		i.PurchasePrice = p
	}
	if r.SalePrice != nil {
		p, err := types.NewMoneyFromString(*r.SalePrice)
		if err != nil {
			return err
		}
		i.SalePrice = p
	}
	if r.ReorderLevel != nil {
		i.ReorderLevel = types.NewQuantityFromFloat64(*r.ReorderLevel)
	}
	if r.IsActive != nil {
		i.IsActive = *r.IsActive
	}
	i.Touch()
	return nil
}
