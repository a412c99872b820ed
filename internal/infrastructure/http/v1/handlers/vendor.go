package handlers

import (
	"stokado/internal/domain/catalogs/vendor"
	"stokado/internal/infrastructure/http/v1/dto"
)

// VendorHTTPHandler is the concrete catalog handler for vendors.
type VendorHTTPHandler = CatalogHandler[
	*vendor.Vendor,
	dto.CreateVendorRequest,
	dto.UpdateVendorRequest,
]

// NewVendorHandler wires DTO mapping for the vendor catalog.
func NewVendorHandler(base *BaseHandler, service *vendor.Service) *VendorHTTPHandler {
	config := CatalogHandlerConfig[
		*vendor.Vendor,
		dto.CreateVendorRequest,
		dto.UpdateVendorRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "vendor",

		MapCreateDTO: func(req dto.CreateVendorRequest) (*vendor.Vendor, error) {
			return req.ToEntity(), nil
		},
		MapUpdateDTO: func(req dto.UpdateVendorRequest, existing *vendor.Vendor) (*vendor.Vendor, error) {
			req.ApplyTo(existing)
			return existing, nil
		},
		MapToDTO: func(v *vendor.Vendor) any {
			return dto.FromVendor(v)
		},
	}

	return NewCatalogHandler(base, config)
}
