package handlers

import (
	"stokado/internal/domain/catalogs/warehouse"
	"stokado/internal/infrastructure/http/v1/dto"
)

// WarehouseHTTPHandler is the concrete catalog handler for warehouses.
type WarehouseHTTPHandler = CatalogHandler[
	*warehouse.Warehouse,
	dto.CreateWarehouseRequest,
	dto.UpdateWarehouseRequest,
]

// NewWarehouseHandler wires DTO mapping for the warehouse catalog.
func NewWarehouseHandler(base *BaseHandler, service *warehouse.Service) *WarehouseHTTPHandler {
	config := CatalogHandlerConfig[
		*warehouse.Warehouse,
		dto.CreateWarehouseRequest,
		dto.UpdateWarehouseRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "warehouse",

		MapCreateDTO: func(req dto.CreateWarehouseRequest) (*warehouse.Warehouse, error) {
			return req.ToEntity(), nil
		},
		MapUpdateDTO: func(req dto.UpdateWarehouseRequest, existing *warehouse.Warehouse) (*warehouse.Warehouse, error) {
			req.ApplyTo(existing)
			return existing, nil
		},
		MapToDTO: func(w *warehouse.Warehouse) any {
			return dto.FromWarehouse(w)
		},
	}

	return NewCatalogHandler(base, config)
}
