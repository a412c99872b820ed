// Package customer provides the Customer catalog.
package customer

import (
	"context"
	"regexp"
	"strings"

	"stokado/internal/core/apperror"
	"stokado/internal/core/entity"
)

// Prefix is the sequence prefix for customer codes.
const Prefix = "CUS"

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Customer represents a buyer of goods.
type Customer struct {
	entity.Catalog

	// Email is the primary contact address
	Email *string `db:"email" json:"email,omitempty"`

	// Address is the free-form postal address
	Address *string `db:"address" json:"address,omitempty"`

	// City for reporting and grouping
	City *string `db:"city" json:"city,omitempty"`

	// Remarks is free-form operator text
	Remarks *string `db:"remarks" json:"remarks,omitempty"`

	// IsActive indicates the customer can be used in new documents
	IsActive bool `db:"is_active" json:"isActive"`
}

// NewCustomer creates a new Customer with required fields.
func NewCustomer(code, name string) *Customer {
	return &Customer{
		Catalog:  entity.NewCatalog(code, name),
		IsActive: true,
	}
}

// Validate implements entity.Validatable.
func (c *Customer) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	if c.Email != nil && *c.Email != "" && !emailPattern.MatchString(*c.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email").
			WithDetail("value", *c.Email)
	}

	return nil
}

// Normalize trims free-form fields. Called before persisting.
func (c *Customer) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	trimPtr(&c.Email)
	trimPtr(&c.Address)
	trimPtr(&c.City)
	trimPtr(&c.Remarks)
}

func trimPtr(s **string) {
	if *s == nil {
		return
	}
	v := strings.TrimSpace(**s)
	if v == "" {
		*s = nil
		return
	}
	*s = &v
}
