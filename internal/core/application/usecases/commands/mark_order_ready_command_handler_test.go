package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dinedash/internal/core/application/usecases/commands"
	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/core/domain/model/order"
	"dinedash/internal/core/domain/model/restaurant"
	"dinedash/internal/pkg/errs"
)

func newRestaurant(t *testing.T, id, ownerID kernel.UUID) *restaurant.Restaurant {
	t.Helper()
	location, err := kernel.GeoPointFromFloat64(40.0, -74.0)
	require.NoError(t, err)
	rest, err := restaurant.NewRestaurant(id, ownerID, "Trattoria", "2 Side St", location)
	require.NoError(t, err)
	return rest
}

func TestMarkOrderReadyCommandHandler_Handle_AdvancesPlacedOrder(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	aggregate := restoreOrder(t, kernel.NewUUID(), kernel.NewUUID(), order.Placed, nil, nil, nil)
	rest := newRestaurant(t, aggregate.RestaurantID(), ownerID)

	cmd, err := commands.NewMarkOrderReadyCommand(ownerID, aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	restRepo := new(MockRestaurantRepository)
	uow := new(MockKitchenUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("RestaurantRepository").Return(restRepo).Once(),
		restRepo.On("Get", mock.Anything, aggregate.RestaurantID()).Return(rest, nil).Once(),
		orderRepo.On("UpdateTransition", mock.Anything, aggregate, order.Placed).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockKitchenUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOrderReadyCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.ReadyForPickup, aggregate.Status())
}

func TestMarkOrderReadyCommandHandler_Handle_ForeignRestaurantIsNotFound(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreOrder(t, kernel.NewUUID(), kernel.NewUUID(), order.Placed, nil, nil, nil)
	rest := newRestaurant(t, aggregate.RestaurantID(), kernel.NewUUID())

	cmd, err := commands.NewMarkOrderReadyCommand(kernel.NewUUID(), aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	restRepo := new(MockRestaurantRepository)
	uow := new(MockKitchenUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("RestaurantRepository").Return(restRepo).Once(),
		restRepo.On("Get", mock.Anything, aggregate.RestaurantID()).Return(rest, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockKitchenUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOrderReadyCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrObjectNotFound))
}

func TestMarkOrderReadyCommandHandler_Handle_UnplacedOrderConflicts(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	aggregate := newUnplacedOrder(t, kernel.NewUUID(), kernel.NewUUID())
	rest := newRestaurant(t, aggregate.RestaurantID(), ownerID)

	cmd, err := commands.NewMarkOrderReadyCommand(ownerID, aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	restRepo := new(MockRestaurantRepository)
	uow := new(MockKitchenUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("RestaurantRepository").Return(restRepo).Once(),
		restRepo.On("Get", mock.Anything, aggregate.RestaurantID()).Return(rest, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockKitchenUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOrderReadyCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrConflict))
}
