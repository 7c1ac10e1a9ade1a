package commands

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/core/domain/model/order"
	"dinedash/internal/core/domain/model/payment"
	"dinedash/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles checkout. Within one transaction it reads
// the restaurant's live prices, freezes the cart's total, stamps placement
// time, and records the payment for the frozen amount. The status write is
// guarded on the order still being unplaced, so two concurrent checkouts of
// the same cart produce exactly one payment.
type PlaceOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for checkout operations.
func NewPlaceOrderCommandHandler(uowFactory CheckoutUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checkout command.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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

	menuItems, err := uow.MenuItemRepository().GetByRestaurant(ctx, cart.RestaurantID())
	if err != nil {
		return err
	}

	prices := make(map[kernel.UUID]decimal.Decimal, len(menuItems))
	for _, menuItem := range menuItems {
		prices[menuItem.ID()] = menuItem.Price()
	}

	if err = cart.Place(prices, time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.UpdateTransition(ctx, cart, order.Unplaced); err != nil {
		return err
	}

	paid, err := payment.NewPayment(
		kernel.NewUUID(), cart.ID(), cart.CustomerID(), *cart.TotalCost(), cmd.Card(),
	)
	if err != nil {
		return err
	}

	if err = uow.PaymentRepository().Add(ctx, paid); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
