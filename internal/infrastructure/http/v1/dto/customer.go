package dto

import (
	"stokado/internal/domain/catalogs/customer"
)

// CustomerResponse is the API representation of a customer.
type CustomerResponse struct {
	CatalogResponse
	Email    *string `json:"email,omitempty"`
	Address  *string `json:"address,omitempty"`
	City     *string `json:"city,omitempty"`
	Remarks  *string `json:"remarks,omitempty"`
	IsActive bool    `json:"isActive"`
}

// FromCustomer creates CustomerResponse from the domain entity.
func FromCustomer(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		CatalogResponse: FromCatalog(c.Catalog),
		Email:           c.Email,
		Address:         c.Address,
		City:            c.City,
		Remarks:         c.Remarks,
		IsActive:        c.IsActive,
	}
}

// CreateCustomerRequest for creating customers. Code is optional; when
// omitted the server assigns the next CUS identifier.
type CreateCustomerRequest struct {
	Code    string  `json:"code"`
	Name    string  `json:"name" binding:"required"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	Remarks *string `json:"remarks"`
}

// ToEntity converts the request to a domain entity.
func (r CreateCustomerRequest) ToEntity() *customer.Customer {
	c := customer.NewCustomer(r.Code, r.Name)
	c.Email = r.Email
	c.Address = r.Address
	c.City = r.City
	c.Remarks = r.Remarks
	return c
}

// UpdateCustomerRequest for updating customers. Nil fields are left as-is.
type UpdateCustomerRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	Remarks  *string `json:"remarks"`
	IsActive *bool   `json:"isActive"`
}

// ApplyTo overlays the request onto an existing entity.
func (r UpdateCustomerRequest) ApplyTo(c *customer.Customer) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Email != nil {
		c.Email = r.Email
	}
	if r.Address != nil {
		c.Address = r.Address
	}
	if r.City != nil {
		c.City = r.City
	}
	if r.Remarks != nil {
		c.Remarks = r.Remarks
	}
	if r.IsActive != nil {
		c.IsActive = *r.IsActive
	}
	c.Touch()
}
