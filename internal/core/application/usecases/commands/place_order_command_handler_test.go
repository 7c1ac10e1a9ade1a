package commands_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dinedash/internal/core/application/usecases/commands"
	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/core/domain/model/order"
	"dinedash/internal/core/domain/model/payment"
	"dinedash/internal/core/domain/model/restaurant"
	"dinedash/internal/pkg/errs"
)

func TestPlaceOrderCommandHandler_Handle_FreezesTotalAndRecordsPayment(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	pizza, err := restaurant.NewMenuItem(
		kernel.NewUUID(), restaurantID, "Slice", decimal.NewFromFloat(3.25),
	)
	require.NoError(t, err)
	salad, err := restaurant.NewMenuItem(
		kernel.NewUUID(), restaurantID, "Salad", decimal.NewFromFloat(7.00),
	)
	require.NoError(t, err)

	// 2 x 3.25 + 1 x 7.00 = 13.50
	cart := newUnplacedOrder(t, customerID, restaurantID)
	require.NoError(t, cart.SetItemQuantity(pizza.ID(), 2))
	require.NoError(t, cart.SetItemQuantity(salad.ID(), 1))

	cmd, err := commands.NewPlaceOrderCommand(customerID, cart.ID(), newTestCard(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuItemRepository)
	paymentRepo := new(MockPaymentRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, cart.ID()).Return(cart, nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("GetByRestaurant", mock.Anything, restaurantID).
			Return([]*restaurant.MenuItem{pizza, salad}, nil).Once(),
		orderRepo.On("UpdateTransition", mock.Anything, cart, order.Unplaced).Return(nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("Add", mock.Anything, mock.AnythingOfType("*payment.Payment")).
			Run(func(args mock.Arguments) {
				paid := args.Get(1).(*payment.Payment)
				require.True(t, paid.AmountPaid().Equal(decimal.NewFromFloat(13.50)))
				require.True(t, paid.OrderID().IsEqual(cart.ID()))
				require.True(t, paid.CustomerID().IsEqual(customerID))
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.Placed, cart.Status())
	require.NotNil(t, cart.TotalCost())
	require.True(t, cart.TotalCost().Equal(decimal.NewFromFloat(13.50)))
	require.NotNil(t, cart.PlacedAt())

	orderRepo.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
	paymentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_EmptyCartConflicts(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cart := newUnplacedOrder(t, customerID, kernel.NewUUID())

	cmd, err := commands.NewPlaceOrderCommand(customerID, cart.ID(), newTestCard(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuItemRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, cart.ID()).Return(cart, nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("GetByRestaurant", mock.Anything, cart.RestaurantID()).
			Return([]*restaurant.MenuItem{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrConflict))
}

func TestPlaceOrderCommandHandler_Handle_ForeignCartIsNotFound(t *testing.T) {
	ctx := t.Context()
	cart := newUnplacedOrder(t, kernel.NewUUID(), kernel.NewUUID())

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), cart.ID(), newTestCard(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, cart.ID()).Return(cart, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrObjectNotFound))
}

func TestPlaceOrderCommandHandler_Handle_StaleTransitionConflicts(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	pizza, err := restaurant.NewMenuItem(
		kernel.NewUUID(), restaurantID, "Slice", decimal.NewFromFloat(3.25),
	)
	require.NoError(t, err)

	cart := newUnplacedOrder(t, customerID, restaurantID)
	require.NoError(t, cart.SetItemQuantity(pizza.ID(), 1))

	cmd, err := commands.NewPlaceOrderCommand(customerID, cart.ID(), newTestCard(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuItemRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, cart.ID()).Return(cart, nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("GetByRestaurant", mock.Anything, restaurantID).
			Return([]*restaurant.MenuItem{pizza}, nil).Once(),
		orderRepo.On("UpdateTransition", mock.Anything, cart, order.Unplaced).
			Return(errs.NewConflictError("order status")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrConflict))
}
