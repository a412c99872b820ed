package dto

import (
	"stokado/internal/domain/catalogs/warehouse"
)

// WarehouseResponse is the API representation of a warehouse.
type WarehouseResponse struct {
	CatalogResponse
	Type      string  `json:"type"`
	Address   *string `json:"address,omitempty"`
	City      *string `json:"city,omitempty"`
	IsActive  bool    `json:"isActive"`
	IsDefault bool    `json:"isDefault"`
	Remarks   *string `json:"remarks,omitempty"`
}

// FromWarehouse creates WarehouseResponse from the domain entity.
func FromWarehouse(w *warehouse.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		CatalogResponse: FromCatalog(w.Catalog),
		Type:            string(w.Type),
		Address:         w.Address,
		City:            w.City,
		IsActive:        w.IsActive,
		IsDefault:       w.IsDefault,
		Remarks:         w.Remarks,
	}
}

// CreateWarehouseRequest for creating warehouses. Code is optional; when
// omitted the server assigns the next WH identifier.
type CreateWarehouseRequest struct {
	Code      string  `json:"code"`
	Name      string  `json:"name" binding:"required"`
	Type      string  `json:"type" binding:"required"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	IsDefault bool    `json:"isDefault"`
	Remarks   *string `json:"remarks"`
}

// ToEntity converts the request to a domain entity.
func (r CreateWarehouseRequest) ToEntity() *warehouse.Warehouse {
	w := warehouse.NewWarehouse(r.Code, r.Name, warehouse.WarehouseType(r.Type))
	w.Address = r.Address
	w.City = r.City
	w.IsDefault = r.IsDefault
	w.Remarks = r.Remarks
	return w
}

// UpdateWarehouseRequest for updating warehouses. Nil fields are left as-is.
type UpdateWarehouseRequest struct {
	Name      *string `json:"name"`
	Type      *string `json:"type"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	IsActive  *bool   `json:"isActive"`
	IsDefault *bool   `json:"isDefault"`
	Remarks   *string `json:"remarks"`
}

// ApplyTo overlays the request onto an existing entity.
func (r UpdateWarehouseRequest) ApplyTo(w *warehouse.Warehouse) {
	if r.Name != nil {
		w.Name = *r.Name
	}
	if r.Type != nil {
		w.Type = warehouse.WarehouseType(*r.Type)
	}
	if r.Address != nil {
		w.Address = r.Address
	}
	if r.City != nil {
		w.City = r.City
	}
	if r.IsActive != nil {
		w.IsActive = *r.IsActive
	}
	if r.IsDefault != nil {
		w.IsDefault = *r.IsDefault
	}
	if r.Remarks != nil {
		w.Remarks = r.Remarks
	}
	w.Touch()
}
