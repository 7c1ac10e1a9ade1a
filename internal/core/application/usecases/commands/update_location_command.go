package commands

import (
	"errors"

	"dinedash/internal/core/domain/model/account"
	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/pkg/guard"
)

var (
	ErrUpdateLocationCommandIsNotConstructed = errors.New(
		"UpdateLocationCommand must be created via NewUpdateLocationCommand constructor",
	)
	ErrAddressIsRequired = errors.New("address is required")
)

// UpdateLocationCommand represents a principal of any role submitting a new
// free-text address. The handler resolves it to coordinates once, at update
// time, and stores both; nothing is re-geocoded on read paths.
type UpdateLocationCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	role      account.Role
	address   string

	guard guard.ConstructorGuard
}

// NewUpdateLocationCommand creates a command to update a principal's address.
func NewUpdateLocationCommand(
	accountID kernel.UUID, role account.Role, address string,
) (UpdateLocationCommand, error) {
	cmd := UpdateLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setRole(role),
		cmd.setAddress(address),
	); err != nil {
		return UpdateLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLocationCommandIsNotConstructed)
}

// AccountID returns the id of the principal whose address changes.
func (c UpdateLocationCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Role returns the principal's role, which selects the record to update.
func (c UpdateLocationCommand) Role() account.Role {
	return c.role
}

// Address returns the submitted free-text address.
func (c UpdateLocationCommand) Address() string {
	return c.address
}

func (c *UpdateLocationCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *UpdateLocationCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *UpdateLocationCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}
