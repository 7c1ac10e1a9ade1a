package commands

import (
	"errors"

	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/pkg/guard"
)

var ErrMarkOrderReadyCommandIsNotConstructed = errors.New(
	"MarkOrderReadyCommand must be created via NewMarkOrderReadyCommand constructor",
)

// MarkOrderReadyCommand represents a restaurant announcing that a placed
// order is prepared and ready for courier pickup.
type MarkOrderReadyCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOrderReadyCommand creates a command to move an order to ready.
// The account is the restaurant-side principal; ownership of the order's
// restaurant is verified by the handler.
func NewMarkOrderReadyCommand(accountID, orderID kernel.UUID) (MarkOrderReadyCommand, error) {
	cmd := MarkOrderReadyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setOrderID(orderID),
	); err != nil {
		return MarkOrderReadyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderReadyCommandIsNotConstructed)
}

// AccountID returns the id of the restaurant-side principal.
func (c MarkOrderReadyCommand) AccountID() kernel.UUID {
	return c.accountID
}

// OrderID returns the id of the order being marked ready.
func (c MarkOrderReadyCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkOrderReadyCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *MarkOrderReadyCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
