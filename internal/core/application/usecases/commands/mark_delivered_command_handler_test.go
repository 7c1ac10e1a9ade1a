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

func TestMarkDeliveredCommandHandler_Handle_CompletesDelivery(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	aggregate := restoreOrder(t, kernel.NewUUID(), kernel.NewUUID(),
		order.InTransit, nil, &courierID, nil)

	cmd, err := commands.NewMarkDeliveredCommand(courierID, aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("UpdateTransition", mock.Anything, aggregate, order.InTransit).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkDeliveredCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.Delivered, aggregate.Status())
	require.NotNil(t, aggregate.DeliveredAt())
}

func TestMarkDeliveredCommandHandler_Handle_WrongCourierIsNotFound(t *testing.T) {
	ctx := t.Context()
	assigned := kernel.NewUUID()
	aggregate := restoreOrder(t, kernel.NewUUID(), kernel.NewUUID(),
		order.InTransit, nil, &assigned, nil)

	cmd, err := commands.NewMarkDeliveredCommand(kernel.NewUUID(), aggregate.ID())
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

	h := commands.NewMarkDeliveredCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrObjectNotFound))
}

func TestMarkDeliveredCommandHandler_Handle_SecondCompletionConflicts(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	aggregate := restoreOrder(t, kernel.NewUUID(), kernel.NewUUID(),
		order.Delivered, nil, &courierID, nil)

	cmd, err := commands.NewMarkDeliveredCommand(courierID, aggregate.ID())
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

	h := commands.NewMarkDeliveredCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrConflict))
}
