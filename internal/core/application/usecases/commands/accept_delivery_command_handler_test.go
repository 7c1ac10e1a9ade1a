package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dinedash/internal/core/application/usecases/commands"
	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/core/domain/model/order"
	"dinedash/internal/pkg/errs"
)

func TestAcceptDeliveryCommandHandler_Handle_AssignsCourier(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	aggregate := restoreOrder(t, kernel.NewUUID(), kernel.NewUUID(),
		order.ReadyForPickup, nil, nil, nil)

	cmd, err := commands.NewAcceptDeliveryCommand(courierID, aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("UpdateTransition", mock.Anything, aggregate, order.ReadyForPickup).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptDeliveryCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.InTransit, aggregate.Status())
	require.NotNil(t, aggregate.Courier())
	require.True(t, aggregate.Courier().IsEqual(courierID))
}

func TestAcceptDeliveryCommandHandler_Handle_RejectedCourierCannotAccept(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	aggregate := restoreOrder(t, kernel.NewUUID(), kernel.NewUUID(),
		order.ReadyForPickup, nil, nil, []kernel.UUID{courierID})

	cmd, err := commands.NewAcceptDeliveryCommand(courierID, aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrConflict))
	orderRepo.AssertNotCalled(t, "UpdateTransition", mock.Anything, mock.Anything, mock.Anything)
}

func TestAcceptDeliveryCommandHandler_Handle_LosingRaceConflicts(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreOrder(t, kernel.NewUUID(), kernel.NewUUID(),
		order.ReadyForPickup, nil, nil, nil)

	cmd, err := commands.NewAcceptDeliveryCommand(kernel.NewUUID(), aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("UpdateTransition", mock.Anything, aggregate, order.ReadyForPickup).
			Return(errs.NewConflictError("order courier")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrConflict))
}
