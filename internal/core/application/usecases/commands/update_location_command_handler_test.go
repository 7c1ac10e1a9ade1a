package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dinedash/internal/core/application/usecases/commands"
	"dinedash/internal/core/domain/model/account"
	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/core/ports"
	"dinedash/internal/pkg/errs"
)

func TestUpdateLocationCommandHandler_Handle_StoresResolvedCoordinates(t *testing.T) {
	ctx := t.Context()
	customer, err := account.NewCustomer(kernel.NewUUID(), "Pat", "Doe")
	require.NoError(t, err)

	address := "1 Main St, Springfield"
	point, err := kernel.GeoPointFromFloat64(40.7128, -74.0060)
	require.NoError(t, err)

	cmd, err := commands.NewUpdateLocationCommand(customer.ID(), account.RoleCustomer, address)
	require.NoError(t, err)

	geocoder := new(MockGeocoder)
	geocoder.On("Resolve", mock.Anything, address).Return(point, nil).Once()

	customerRepo := new(MockCustomerRepository)
	uow := new(MockProfileUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Twice(),
		customerRepo.On("Get", mock.Anything, customer.ID()).Return(customer, nil).Once(),
		customerRepo.On("Update", mock.Anything, customer).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProfileUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateLocationCommandHandler(factory, geocoder)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, customer.Address())
	require.Equal(t, address, *customer.Address())
	require.NotNil(t, customer.Location())
	locationEqual, err := customer.Location().IsEqual(point)
	require.NoError(t, err)
	require.True(t, locationEqual)
	geocoder.AssertExpectations(t)
}

func TestUpdateLocationCommandHandler_Handle_UnresolvableAddressIsInvalid(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateLocationCommand(
		kernel.NewUUID(), account.RoleCourier, "nowhere at all",
	)
	require.NoError(t, err)

	geocoder := new(MockGeocoder)
	geocoder.On("Resolve", mock.Anything, "nowhere at all").
		Return(kernel.GeoPoint{}, ports.ErrLocationNotFound).Once()

	factory := new(MockProfileUoWFactory)

	h := commands.NewUpdateLocationCommandHandler(factory, geocoder)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrValueIsInvalid))
	require.True(t, errors.Is(err, ports.ErrLocationNotFound))
	factory.AssertNotCalled(t, "Create")
}

func TestNewUpdateLocationCommand_RequiresAddress(t *testing.T) {
	_, err := commands.NewUpdateLocationCommand(kernel.NewUUID(), account.RoleCustomer, "")
	require.ErrorIs(t, err, commands.ErrAddressIsRequired)
}
