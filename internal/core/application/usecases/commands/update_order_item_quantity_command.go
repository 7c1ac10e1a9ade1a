package commands

import (
	"errors"

	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/pkg/guard"
)

var ErrUpdateOrderItemQuantityCommandIsNotConstructed = errors.New(
	"UpdateOrderItemQuantityCommand must be created via NewUpdateOrderItemQuantityCommand constructor",
)

// UpdateOrderItemQuantityCommand represents a request to change a cart line's
// quantity. Quantity 0 removes the line; removing the last line deletes the
// cart itself. Negative quantities are rejected by the aggregate.
type UpdateOrderItemQuantityCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	orderID    kernel.UUID
	menuItemID kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewUpdateOrderItemQuantityCommand creates a command to change a line quantity.
// The quantity is passed through as-is; range rules live on the aggregate.
func NewUpdateOrderItemQuantityCommand(
	customerID, orderID, menuItemID kernel.UUID, quantity int,
) (UpdateOrderItemQuantityCommand, error) {
	cmd := UpdateOrderItemQuantityCommand{
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setOrderID(orderID),
		cmd.setMenuItemID(menuItemID),
	); err != nil {
		return UpdateOrderItemQuantityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderItemQuantityCommandIsNotConstructed)
}

// CustomerID returns the id of the customer editing the cart.
func (c UpdateOrderItemQuantityCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// OrderID returns the id of the cart being edited.
func (c UpdateOrderItemQuantityCommand) OrderID() kernel.UUID {
	return c.orderID
}

// MenuItemID returns the id of the line's menu item.
func (c UpdateOrderItemQuantityCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Quantity returns the requested quantity.
func (c UpdateOrderItemQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateOrderItemQuantityCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateOrderItemQuantityCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderItemQuantityCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}
