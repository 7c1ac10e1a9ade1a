package account

import (
	"errors"
	"strings"

	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when validating a Customer that
// was not created via NewCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer")

// Customer is the ordering principal. The address is free text; the
// coordinate pair is resolved once when the address is entered, never per
// request, and both are optional until the customer stores a location.
type Customer struct {
	id        kernel.UUID
	firstName string
	lastName  string
	address   *string
	location  *kernel.GeoPoint

	isConstructed bool
}

// NewCustomer creates a customer without a stored location.
func NewCustomer(id kernel.UUID, firstName, lastName string) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if firstName == "" {
		return nil, errs.NewValueIsRequiredError("first name")
	}
	if lastName == "" {
		return nil, errs.NewValueIsRequiredError("last name")
	}

	return &Customer{
		id:            id,
		firstName:     firstName,
		lastName:      lastName,
		isConstructed: true,
	}, nil
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(
	id kernel.UUID, firstName, lastName string, address *string, location *kernel.GeoPoint,
) (*Customer, error) {
	c, err := NewCustomer(id, firstName, lastName)
	if err != nil {
		return nil, err
	}

	if location != nil {
		if err = location.Validate(); err != nil {
			return nil, err
		}
	}

	c.address = address
	c.location = location
	return c, nil
}

// Validate ensures the Customer was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// FullName returns first and last name joined with a space.
func (c *Customer) FullName() string {
	return strings.TrimSpace(c.firstName + " " + c.lastName)
}

// FirstName returns the customer's first name.
func (c *Customer) FirstName() string {
	return c.firstName
}

// LastName returns the customer's last name.
func (c *Customer) LastName() string {
	return c.lastName
}

// Address returns the stored free-text address, if any.
func (c *Customer) Address() *string {
	return c.address
}

// Location returns the resolved coordinates, if any.
func (c *Customer) Location() *kernel.GeoPoint {
	return c.location
}

// SetLocation stores the address together with its resolved coordinates.
// Resolution happens upstream (once, at address entry); an address is never
// stored without coordinates and coordinates are never defaulted.
func (c *Customer) SetLocation(address string, point kernel.GeoPoint) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	if err := point.Validate(); err != nil {
		return err
	}

	c.address = &address
	c.location = &point
	return nil
}
