package account

import (
	"errors"
	"strings"

	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/pkg/errs"
)

// ErrCourierIsNotConstructed is returned when validating a Courier that was
// not created via NewCourier.
var ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier")

// Courier is the delivery contractor principal. A courier must have a
// stored location before querying the matching queue; both distance legs
// are measured from these coordinates.
type Courier struct {
	id        kernel.UUID
	firstName string
	lastName  string
	address   *string
	location  *kernel.GeoPoint

	isConstructed bool
}

// NewCourier creates a courier without a stored location.
func NewCourier(id kernel.UUID, firstName, lastName string) (*Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if firstName == "" {
		return nil, errs.NewValueIsRequiredError("first name")
	}
	if lastName == "" {
		return nil, errs.NewValueIsRequiredError("last name")
	}

	return &Courier{
		id:            id,
		firstName:     firstName,
		lastName:      lastName,
		isConstructed: true,
	}, nil
}

// RestoreCourier reconstructs a courier from persistence.
func RestoreCourier(
	id kernel.UUID, firstName, lastName string, address *string, location *kernel.GeoPoint,
) (*Courier, error) {
	c, err := NewCourier(id, firstName, lastName)
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

// Validate ensures the Courier was properly constructed.
func (c *Courier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCourierIsNotConstructed
	}
	return nil
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// FullName returns first and last name joined with a space.
func (c *Courier) FullName() string {
	return strings.TrimSpace(c.firstName + " " + c.lastName)
}

// FirstName returns the courier's first name.
func (c *Courier) FirstName() string {
	return c.firstName
}

// LastName returns the courier's last name.
func (c *Courier) LastName() string {
	return c.lastName
}

// Address returns the stored free-text address, if any.
func (c *Courier) Address() *string {
	return c.address
}

// Location returns the resolved coordinates, if any.
func (c *Courier) Location() *kernel.GeoPoint {
	return c.location
}

// SetLocation stores the address together with its resolved coordinates.
func (c *Courier) SetLocation(address string, point kernel.GeoPoint) error {
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
