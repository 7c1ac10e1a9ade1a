package restaurant

import (
	"errors"

	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMenuItemIsNotConstructed is returned when validating a MenuItem that
// was not created via NewMenuItem.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem")

// MenuItem is a priced dish on a restaurant's menu. Order lines reference
// menu items by id; the price here is the live price read at total
// computation time, never copied onto order lines.
type MenuItem struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	price        decimal.Decimal

	isConstructed bool
}

// NewMenuItem creates a menu item. The price must not be negative.
func NewMenuItem(id, restaurantID kernel.UUID, name string, price decimal.Decimal) (*MenuItem, error) {
	if err := errors.Join(id.Validate(), restaurantID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if price.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("price",
			errors.New("price cannot be negative"))
	}

	return &MenuItem{
		id:            id,
		restaurantID:  restaurantID,
		name:          name,
		price:         price,
		isConstructed: true,
	}, nil
}

// RestoreMenuItem reconstructs a menu item from persistence.
func RestoreMenuItem(id, restaurantID kernel.UUID, name string, price decimal.Decimal) (*MenuItem, error) {
	return NewMenuItem(id, restaurantID, name, price)
}

// Validate ensures the MenuItem was properly constructed.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// ID returns the menu item's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// RestaurantID returns the owning restaurant's identifier.
func (m *MenuItem) RestaurantID() kernel.UUID {
	return m.restaurantID
}

// Name returns the dish name.
func (m *MenuItem) Name() string {
	return m.name
}

// Price returns the current price.
func (m *MenuItem) Price() decimal.Decimal {
	return m.price
}
