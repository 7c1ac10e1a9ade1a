package queries

import (
	"errors"

	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves a customer's unplaced cart against a restaurant,
// with its lines priced from the live menu. The running total shown here is
// advisory; the binding total is frozen only at checkout.
type GetCartQuery struct {
	customerID   kernel.UUID
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a cart query for a (customer, restaurant) pair.
func NewGetCartQuery(customerID, restaurantID kernel.UUID) (GetCartQuery, error) {
	if err := errors.Join(customerID.Validate(), restaurantID.Validate()); err != nil {
		return GetCartQuery{}, err
	}

	return GetCartQuery{
		customerID:   customerID,
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CustomerID returns the id of the cart's owner.
func (q GetCartQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// RestaurantID returns the id of the restaurant the cart is against.
func (q GetCartQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// GetCartQueryLine is one cart line priced from the live menu.
type GetCartQueryLine struct {
	MenuItemID kernel.UUID
	Name       string
	Price      string
	Quantity   int
	LineTotal  string
}

// GetCartQueryResponse is the cart with its lines and running total.
type GetCartQueryResponse struct {
	OrderID      kernel.UUID
	Lines        []GetCartQueryLine
	RunningTotal string
}
