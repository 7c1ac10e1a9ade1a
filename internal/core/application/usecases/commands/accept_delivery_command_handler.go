package commands

import (
	"context"

	"dinedash/internal/core/domain/model/order"
)

// AcceptDeliveryCommandHandler handles exclusive delivery acceptance.
//
// The aggregate guards status, prior rejection, and existing assignment;
// the storage write re-checks status and unassignment in its WHERE clause,
// so of two couriers racing for the same order exactly one commit succeeds
// and the loser gets a conflict.
type AcceptDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcceptDeliveryCommandHandler creates a handler for delivery acceptance.
func NewAcceptDeliveryCommandHandler(uowFactory OrderUoWFactory) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acceptance command.
func (h *AcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryCommand) error {
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

	if err = aggregate.Accept(cmd.CourierID()); err != nil {
		return err
	}

	if err = orderRepo.UpdateTransition(ctx, aggregate, order.ReadyForPickup); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
