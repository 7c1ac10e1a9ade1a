package commands

import (
	"errors"
	"strconv"
	"strings"

	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/pkg/guard"
)

var ErrUpdateDeliveryEtaCommandIsNotConstructed = errors.New(
	"UpdateDeliveryEtaCommand must be created via NewUpdateDeliveryEtaCommand constructor",
)

// UpdateDeliveryEtaCommand represents the assigned courier reporting how many
// minutes away they are. The estimate arrives as raw text from the client;
// anything non-numeric clears the stored estimate instead of failing, since a
// stale number is worse than none. Negative numbers are rejected by the
// aggregate.
type UpdateDeliveryEtaCommand struct { //nolint:recvcheck //using for validation
	courierID   kernel.UUID
	orderID     kernel.UUID
	minutesAway *int

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryEtaCommand creates a command to update a delivery estimate.
// The raw minutes value is parsed here: an unparsable value becomes a cleared
// estimate, never an error.
func NewUpdateDeliveryEtaCommand(
	courierID, orderID kernel.UUID, rawMinutesAway string,
) (UpdateDeliveryEtaCommand, error) {
	cmd := UpdateDeliveryEtaCommand{
		minutesAway: parseMinutesAway(rawMinutesAway),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCourierID(courierID),
		cmd.setOrderID(orderID),
	); err != nil {
		return UpdateDeliveryEtaCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryEtaCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryEtaCommandIsNotConstructed)
}

// CourierID returns the id of the reporting courier.
func (c UpdateDeliveryEtaCommand) CourierID() kernel.UUID {
	return c.courierID
}

// OrderID returns the id of the in-transit order.
func (c UpdateDeliveryEtaCommand) OrderID() kernel.UUID {
	return c.orderID
}

// MinutesAway returns the parsed estimate, or nil when the raw input did not
// parse and the stored estimate should be cleared.
func (c UpdateDeliveryEtaCommand) MinutesAway() *int {
	return c.minutesAway
}

func (c *UpdateDeliveryEtaCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *UpdateDeliveryEtaCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func parseMinutesAway(raw string) *int {
	minutes, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}

	return &minutes
}
