package handlers

import (
	"stokado/internal/domain/catalogs/customer"
	"stokado/internal/infrastructure/http/v1/dto"
)

// CustomerHTTPHandler is the concrete catalog handler for customers.
type CustomerHTTPHandler = CatalogHandler[
	*customer.Customer,
	dto.CreateCustomerRequest,
	dto.UpdateCustomerRequest,
]

// NewCustomerHandler wires DTO mapping for the customer catalog.
func NewCustomerHandler(base *BaseHandler, service *customer.Service) *CustomerHTTPHandler {
	config := CatalogHandlerConfig[
		*customer.Customer,
		dto.CreateCustomerRequest,
		dto.UpdateCustomerRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "customer",

		MapCreateDTO: func(req dto.CreateCustomerRequest) (*customer.Customer, error) {
			return req.ToEntity(), nil
		},
		MapUpdateDTO: func(req dto.UpdateCustomerRequest, existing *customer.Customer) (*customer.Customer, error) {
			req.ApplyTo(existing)
			return existing, nil
		},
		MapToDTO: func(c *customer.Customer) any {
			return dto.FromCustomer(c)
		},
	}

	return NewCatalogHandler(base, config)
}
