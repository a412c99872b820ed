package dto

import (
	"stokado/internal/domain/catalogs/vendor"
)

// VendorResponse is the API representation of a vendor.
type VendorResponse struct {
	CatalogResponse
	Email         *string `json:"email,omitempty"`
	Address       *string `json:"address,omitempty"`
	City          *string `json:"city,omitempty"`
	ContactPerson *string `json:"contactPerson,omitempty"`
	Remarks       *string `json:"remarks,omitempty"`
	IsActive      bool    `json:"isActive"`
}

// FromVendor creates VendorResponse from the domain entity.
func FromVendor(v *vendor.Vendor) VendorResponse {
	return VendorResponse{
		CatalogResponse: FromCatalog(v.Catalog),
		Email:           v.Email,
		Address:         v.Address,
		City:            v.City,
		ContactPerson:   v.ContactPerson,
		Remarks:         v.Remarks,
		IsActive:        v.IsActive,
	}
}

// CreateVendorRequest for creating vendors. Code is optional; when omitted
// the server assigns the next VEN identifier.
type CreateVendorRequest struct {
	Code          string  `json:"code"`
	Name          string  `json:"name" binding:"required"`
	Email         *string `json:"email"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	ContactPerson *string `json:"contactPerson"`
	Remarks       *string `json:"remarks"`
}

// ToEntity converts the request to a domain entity.
func (r CreateVendorRequest) ToEntity() *vendor.Vendor {
	v := vendor.NewVendor(r.Code, r.Name)
	v.Email = r.Email
	v.Address = r.Address
	v.City = r.City
	v.ContactPerson = r.ContactPerson
	v.Remarks = r.Remarks
	return v
}

// UpdateVendorRequest for updating vendors. Nil fields are left as-is.
type UpdateVendorRequest struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	ContactPerson *string `json:"contactPerson"`
	Remarks       *string `json:"remarks"`
	IsActive      *bool   `json:"isActive"`
}

// ApplyTo overlays the request onto an existing entity.
func (r UpdateVendorRequest) ApplyTo(v *vendor.Vendor) {
	if r.Name != nil {
		v.Name = *r.Name
	}
	if r.Email != nil {
		v.Email = r.Email
	}
	if r.Address != nil {
		v.Address = r.Address
	}
	if r.City != nil {
		v.City = r.City
	}
	if r.ContactPerson != nil {
		v.ContactPerson = r.ContactPerson
	}
	if r.Remarks != nil {
		v.Remarks = r.Remarks
	}
	if r.IsActive != nil {
		v.IsActive = *r.IsActive
	}
	v.Touch()
}
