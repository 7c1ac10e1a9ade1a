package commands

import (
	"context"

	"dinedash/internal/core/domain/model/order"
	"dinedash/internal/pkg/errs"
)

// MarkOrderReadyCommandHandler advances a placed order to ready-for-pickup
// on behalf of the restaurant preparing it.
type MarkOrderReadyCommandHandler struct {
	uowFactory KitchenUoWFactory
}

// NewMarkOrderReadyCommandHandler creates a handler for ready announcements.
func NewMarkOrderReadyCommandHandler(uowFactory KitchenUoWFactory) MarkOrderReadyCommandHandler {
	return MarkOrderReadyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command. An order belonging to a restaurant the
// principal does not own is reported as not found.
func (h *MarkOrderReadyCommandHandler) Handle(ctx context.Context, cmd MarkOrderReadyCommand) error {
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

	rest, err := uow.RestaurantRepository().Get(ctx, aggregate.RestaurantID())
	if err != nil {
		return err
	}

	if !rest.IsOwnedBy(cmd.AccountID()) {
		return errs.NewObjectNotFoundError("order id", cmd.OrderID())
	}

	if err = aggregate.MarkReady(); err != nil {
		return err
	}

	if err = orderRepo.UpdateTransition(ctx, aggregate, order.Placed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
