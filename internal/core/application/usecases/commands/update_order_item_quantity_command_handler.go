package commands

import (
	"context"

	"dinedash/internal/core/domain/model/order"
	"dinedash/internal/pkg/errs"
)

// UpdateOrderItemQuantityCommandHandler handles cart line quantity changes,
// including line removal via quantity 0.
type UpdateOrderItemQuantityCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewUpdateOrderItemQuantityCommandHandler creates a handler for line quantity changes.
func NewUpdateOrderItemQuantityCommandHandler(
	uowFactory CartUoWFactory,
) UpdateOrderItemQuantityCommandHandler {
	return UpdateOrderItemQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quantity change. A cart owned by another customer is
// reported as not found. An empty unplaced cart left after a removal is
// deleted outright so the next addition starts fresh.
func (h *UpdateOrderItemQuantityCommandHandler) Handle(
	ctx context.Context, cmd UpdateOrderItemQuantityCommand,
) error {
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

	cart, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !cart.CustomerID().IsEqual(cmd.CustomerID()) {
		return errs.NewObjectNotFoundError("order id", cmd.OrderID())
	}

	if err = cart.SetItemQuantity(cmd.MenuItemID(), cmd.Quantity()); err != nil {
		return err
	}

	if cart.IsEmpty() && cart.Status() == order.Unplaced {
		err = orderRepo.Delete(ctx, cart.ID())
	} else {
		err = orderRepo.Update(ctx, cart)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
