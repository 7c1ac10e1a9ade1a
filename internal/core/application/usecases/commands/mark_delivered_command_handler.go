package commands

import (
	"context"
	"time"

	"dinedash/internal/core/domain/model/order"
)

// MarkDeliveredCommandHandler completes a delivery: verifies the reporting
// courier is the assigned one, stamps the delivery time, and moves the
// order to its terminal state. Reporting twice is a conflict.
type MarkDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkDeliveredCommandHandler creates a handler for delivery completion.
func NewMarkDeliveredCommandHandler(uowFactory OrderUoWFactory) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command. An order assigned to a different
// courier is reported as not found.
func (h *MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
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

	if err = aggregate.MarkDelivered(cmd.CourierID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.UpdateTransition(ctx, aggregate, order.InTransit); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
