package handlers

import (
	"stokado/internal/domain/catalogs/item"
	"stokado/internal/infrastructure/http/v1/dto"
)

// ItemHTTPHandler is the concrete catalog handler for inventory items.
type ItemHTTPHandler = CatalogHandler[
	*item.Item,
	dto.CreateItemRequest,
	dto.UpdateItemRequest,
]

// NewItemHandler wires DTO mapping for the inventory item catalog.
func NewItemHandler(base *BaseHandler, service *item.Service) *ItemHTTPHandler {
	config := CatalogHandlerConfig[
		*item.Item,
		dto.CreateItemRequest,
		dto.UpdateItemRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "item",

		MapCreateDTO: func(req dto.CreateItemRequest) (*item.Item, error) {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateItemRequest, existing *item.Item) (*item.Item, error) {
			if err := req.ApplyTo(existing); err != nil {
				return nil, err
			}
			return existing, nil
		},
		MapToDTO: func(i *item.Item) any {
			return dto.FromItem(i)
		},
	}

	return NewCatalogHandler(base, config)
}
