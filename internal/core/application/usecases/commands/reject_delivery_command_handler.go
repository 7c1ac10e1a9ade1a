package commands

import (
	"context"
)

// RejectDeliveryCommandHandler records a courier's permanent rejection of
// an order. Repeating the same rejection is a no-op, not an error.
type RejectDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRejectDeliveryCommandHandler creates a handler for delivery rejection.
func NewRejectDeliveryCommandHandler(uowFactory OrderUoWFactory) RejectDeliveryCommandHandler {
	return RejectDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection command. The order's status is untouched;
// only the rejection set grows.
func (h *RejectDeliveryCommandHandler) Handle(ctx context.Context, cmd RejectDeliveryCommand) error {
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

	if err = aggregate.Reject(cmd.CourierID()); err != nil {
		return err
	}

	// Insert-only write: a concurrent acceptance committed after the load
	// above must not be overwritten by a full-row save.
	if err = orderRepo.AddRejection(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
