package commands

import (
	"errors"

	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/pkg/guard"
)

var (
	ErrAddOrderItemCommandIsNotConstructed = errors.New(
		"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// AddOrderItemCommand represents a request to put a menu item into the
// customer's cart against a restaurant. The cart is the customer's single
// unplaced order for that restaurant and is created on first use; adding an
// item that is already in the cart replaces its quantity.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.UUID
	restaurantID kernel.UUID
	menuItemID   kernel.UUID
	quantity     int

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand creates a command to add a menu item to a cart.
// Validates that all ids are valid and quantity is positive.
func NewAddOrderItemCommand(
	customerID, restaurantID, menuItemID kernel.UUID, quantity int,
) (AddOrderItemCommand, error) {
	cmd := AddOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setMenuItemID(menuItemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddOrderItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

// CustomerID returns the id of the customer editing the cart.
func (c AddOrderItemCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the id of the restaurant the cart is against.
func (c AddOrderItemCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// MenuItemID returns the id of the menu item being added.
func (c AddOrderItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Quantity returns the requested line quantity.
func (c AddOrderItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddOrderItemCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *AddOrderItemCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *AddOrderItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *AddOrderItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
