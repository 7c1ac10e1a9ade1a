package commands

import (
	"context"
)

// UpdateDeliveryEtaCommandHandler stores or clears the assigned courier's
// minutes-away estimate on an in-transit order.
type UpdateDeliveryEtaCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateDeliveryEtaCommandHandler creates a handler for estimate updates.
func NewUpdateDeliveryEtaCommandHandler(uowFactory OrderUoWFactory) UpdateDeliveryEtaCommandHandler {
	return UpdateDeliveryEtaCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the estimate update. An order assigned to a different
// courier is reported as not found.
func (h *UpdateDeliveryEtaCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryEtaCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.SetMinutesAway(cmd.CourierID(), cmd.MinutesAway()); err != nil {
		return err
	}

	// Narrow write guarded by status and courier: an estimate must never
	// land on (or revert) an order that completed in the meantime.
	if err = orderRepo.UpdateMinutesAway(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
