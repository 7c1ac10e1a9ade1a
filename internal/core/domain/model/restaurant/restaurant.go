// Package restaurant contains the Restaurant entity and its menu items.
// Menu management is an external concern; the core reads menu prices live
// when computing order totals and restaurant coordinates when matching.
package restaurant

import (
	"errors"

	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/pkg/errs"
)

// ErrRestaurantIsNotConstructed is returned when validating a Restaurant
// that was not created via NewRestaurant.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant")

// Restaurant is the preparing principal. Unlike customers and couriers a
// restaurant always has an address and resolved coordinates; it cannot be
// listed without a location. The owner account marks orders ready.
type Restaurant struct {
	id       kernel.UUID
	ownerID  kernel.UUID
	name     string
	address  string
	location kernel.GeoPoint

	isConstructed bool
}

// NewRestaurant creates a restaurant with its resolved location.
func NewRestaurant(id, ownerID kernel.UUID, name, address string, location kernel.GeoPoint) (*Restaurant, error) {
	if err := errors.Join(id.Validate(), ownerID.Validate(), location.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if address == "" {
		return nil, errs.NewValueIsRequiredError("address")
	}

	return &Restaurant{
		id:            id,
		ownerID:       ownerID,
		name:          name,
		address:       address,
		location:      location,
		isConstructed: true,
	}, nil
}

// RestoreRestaurant reconstructs a restaurant from persistence.
func RestoreRestaurant(id, ownerID kernel.UUID, name, address string, location kernel.GeoPoint) (*Restaurant, error) {
	return NewRestaurant(id, ownerID, name, address, location)
}

// Validate ensures the Restaurant was properly constructed.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// OwnerID returns the owning account's identifier.
func (r *Restaurant) OwnerID() kernel.UUID {
	return r.ownerID
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// Address returns the restaurant's free-text address.
func (r *Restaurant) Address() string {
	return r.address
}

// Location returns the restaurant's resolved coordinates.
func (r *Restaurant) Location() kernel.GeoPoint {
	return r.location
}

// IsOwnedBy reports whether the given account owns this restaurant.
func (r *Restaurant) IsOwnedBy(accountID kernel.UUID) bool {
	return r.ownerID.IsEqual(accountID)
}

// SetLocation replaces the restaurant's address and resolved coordinates.
func (r *Restaurant) SetLocation(address string, point kernel.GeoPoint) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	if err := point.Validate(); err != nil {
		return err
	}

	r.address = address
	r.location = point
	return nil
}
