// Package account contains the marketplace principals: customers and
// delivery couriers, plus the closed role enum used for authorization
// checks at the operation boundary.
package account

import (
	"fmt"

	"dinedash/internal/pkg/errs"
)

// Role is the closed set of principal kinds. Operations are dispatched per
// role once at the routing boundary; business logic never branches on role
// strings.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer orders food.
	RoleCustomer

	// RoleRestaurant owns a restaurant and prepares orders.
	RoleRestaurant

	// RoleCourier delivers orders.
	RoleCourier
)

// ParseRole maps the wire representation to a Role.
func ParseRole(s string) (Role, error) {
	switch s {
	case "customer":
		return RoleCustomer, nil
	case "restaurant":
		return RoleRestaurant, nil
	case "courier":
		return RoleCourier, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a known role", s))
	}
}

// Validate checks the Role is one of the defined kinds.
func (r Role) Validate() error {
	if r != RoleCustomer && r != RoleRestaurant && r != RoleCourier {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String implements fmt.Stringer.
func (r Role) String() string {
	switch r {
	case RoleCustomer:
		return "customer"
	case RoleRestaurant:
		return "restaurant"
	case RoleCourier:
		return "courier"
	default:
		return "unknown"
	}
}

// Require returns a permission error unless the role matches required.
// This is the single authorization check used by every operation.
func (r Role) Require(required Role) error {
	if r != required {
		return errs.NewPermissionDeniedError(fmt.Sprintf("%s role required", required))
	}
	return nil
}
