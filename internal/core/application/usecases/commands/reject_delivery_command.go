package commands

import (
	"errors"

	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/pkg/guard"
)

var ErrRejectDeliveryCommandIsNotConstructed = errors.New(
	"RejectDeliveryCommand must be created via NewRejectDeliveryCommand constructor",
)

// RejectDeliveryCommand represents a courier declining an order. A rejection
// is permanent: the order never reappears in that courier's queue and the
// courier can never accept it later. Rejecting an order the courier already
// accepted is a conflict, not a cancellation.
type RejectDeliveryCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectDeliveryCommand creates a command to reject a delivery.
func NewRejectDeliveryCommand(courierID, orderID kernel.UUID) (RejectDeliveryCommand, error) {
	cmd := RejectDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCourierID(courierID),
		cmd.setOrderID(orderID),
	); err != nil {
		return RejectDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRejectDeliveryCommandIsNotConstructed)
}

// CourierID returns the id of the rejecting courier.
func (c RejectDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

// OrderID returns the id of the order being rejected.
func (c RejectDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *RejectDeliveryCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *RejectDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
