package commands

import (
	"context"
	"errors"

	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/core/domain/model/order"
	"dinedash/internal/pkg/errs"
)

// AddOrderItemCommandHandler handles adding a menu item to a customer's cart.
// Finds the existing unplaced order for the (customer, restaurant) pair or
// creates one, then upserts the line.
type AddOrderItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddOrderItemCommandHandler creates a handler for cart additions.
func NewAddOrderItemCommandHandler(uowFactory CartUoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add command. The menu item must belong to the cart's
// restaurant; an item from another restaurant is reported as not found
// rather than revealing its existence.
func (h *AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) error {
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

	menuItem, err := uow.MenuItemRepository().Get(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}

	if !menuItem.RestaurantID().IsEqual(cmd.RestaurantID()) {
		return errs.NewObjectNotFoundError("menu item id", cmd.MenuItemID())
	}

	orderRepo := uow.OrderRepository()

	created := false
	cart, err := orderRepo.GetCart(ctx, cmd.CustomerID(), cmd.RestaurantID())
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}

		cart, err = order.NewOrder(kernel.NewUUID(), cmd.CustomerID(), cmd.RestaurantID())
		if err != nil {
			return err
		}
		created = true
	}

	if err = cart.SetItemQuantity(cmd.MenuItemID(), cmd.Quantity()); err != nil {
		return err
	}

	if created {
		err = orderRepo.Add(ctx, cart)
	} else {
		err = orderRepo.Update(ctx, cart)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
