package commands

import (
	"errors"

	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/core/domain/model/payment"
	"dinedash/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a checkout request: the customer submits card
// details for their cart, the total is computed from live menu prices and
// frozen, and a payment record is written for exactly that amount.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	orderID    kernel.UUID
	card       payment.Card

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a checkout command. Card validation (number
// length, expiration ranges, CVV) already happened in the payment.Card
// constructor; here it only needs to be a constructed value.
func NewPlaceOrderCommand(
	customerID, orderID kernel.UUID, card payment.Card,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setOrderID(orderID),
		cmd.setCard(card),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CustomerID returns the id of the customer checking out.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// OrderID returns the id of the cart being placed.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Card returns the submitted card details.
func (c PlaceOrderCommand) Card() payment.Card {
	return c.card
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCard(card payment.Card) error {
	if err := card.Validate(); err != nil {
		return err
	}

	c.card = card
	return nil
}
