package commands

import (
	"context"
	"errors"

	"dinedash/internal/core/domain/model/account"
	"dinedash/internal/core/ports"
	"dinedash/internal/pkg/errs"
)

// UpdateLocationCommandHandler resolves a submitted address through the
// geocoder and stores address plus coordinates on the principal's record.
// A failed resolution is a validation error on the location; coordinates are
// never silently defaulted.
type UpdateLocationCommandHandler struct {
	uowFactory ProfileUoWFactory
	geocoder   ports.Geocoder
}

// NewUpdateLocationCommandHandler creates a handler for address updates.
func NewUpdateLocationCommandHandler(
	uowFactory ProfileUoWFactory, geocoder ports.Geocoder,
) UpdateLocationCommandHandler {
	return UpdateLocationCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
	}
}

// Handle processes the address update for whichever record the principal's
// role selects. Geocoding happens before the transaction opens: there is no
// point holding one across a network call that may fail.
func (h *UpdateLocationCommandHandler) Handle(ctx context.Context, cmd UpdateLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	point, err := h.geocoder.Resolve(ctx, cmd.Address())
	if err != nil {
		if errors.Is(err, ports.ErrLocationNotFound) {
			return errs.NewValueIsInvalidErrorWithCause("location", err)
		}

		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	switch cmd.Role() {
	case account.RoleCustomer:
		customer, getErr := uow.CustomerRepository().Get(ctx, cmd.AccountID())
		if getErr != nil {
			return getErr
		}

		if err = customer.SetLocation(cmd.Address(), point); err != nil {
			return err
		}

		err = uow.CustomerRepository().Update(ctx, customer)
	case account.RoleCourier:
		courier, getErr := uow.CourierRepository().Get(ctx, cmd.AccountID())
		if getErr != nil {
			return getErr
		}

		if err = courier.SetLocation(cmd.Address(), point); err != nil {
			return err
		}

		err = uow.CourierRepository().Update(ctx, courier)
	case account.RoleRestaurant:
		rest, getErr := uow.RestaurantRepository().GetByOwner(ctx, cmd.AccountID())
		if getErr != nil {
			return getErr
		}

		if err = rest.SetLocation(cmd.Address(), point); err != nil {
			return err
		}

		err = uow.RestaurantRepository().Update(ctx, rest)
	default:
		return errs.NewValueIsInvalidError("role")
	}

	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
