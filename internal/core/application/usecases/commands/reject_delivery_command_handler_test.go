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

func TestRejectDeliveryCommandHandler_Handle_RecordsRejection(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	aggregate := restoreOrder(t, kernel.NewUUID(), kernel.NewUUID(),
		order.ReadyForPickup, nil, nil, nil)

	cmd, err := commands.NewRejectDeliveryCommand(courierID, aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("AddRejection", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRejectDeliveryCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	// Status untouched, rejection recorded. The save is insert-only so a
	// concurrently assigned courier is never clobbered.
	require.Equal(t, order.ReadyForPickup, aggregate.Status())
	require.True(t, aggregate.HasRejected(courierID))
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRejectDeliveryCommandHandler_Handle_SelfAcceptedOrderConflicts(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	aggregate := restoreOrder(t, kernel.NewUUID(), kernel.NewUUID(),
		order.InTransit, nil, &courierID, nil)

	cmd, err := commands.NewRejectDeliveryCommand(courierID, aggregate.ID())
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

	h := commands.NewRejectDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrConflict))
	orderRepo.AssertNotCalled(t, "AddRejection", mock.Anything, mock.Anything)
}
