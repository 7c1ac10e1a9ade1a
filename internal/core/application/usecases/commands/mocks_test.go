package commands_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"dinedash/internal/core/application/usecases/commands"
	"dinedash/internal/core/domain/model/account"
	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/core/domain/model/order"
	"dinedash/internal/core/domain/model/payment"
	"dinedash/internal/core/domain/model/restaurant"
	"dinedash/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) AddRejection(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateMinutesAway(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateTransition(
	ctx context.Context, aggregate *order.Order, from order.Status,
) error {
	args := m.Called(ctx, aggregate, from)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if aggregate, ok := args.Get(0).(*order.Order); ok {
		return aggregate, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) GetCart(
	ctx context.Context, customerID, restaurantID kernel.UUID,
) (*order.Order, error) {
	args := m.Called(ctx, customerID, restaurantID)
	if aggregate, ok := args.Get(0).(*order.Order); ok {
		return aggregate, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockMenuItemRepository struct{ mock.Mock }

func (m *MockMenuItemRepository) Add(ctx context.Context, aggregate *restaurant.MenuItem) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMenuItemRepository) Get(
	ctx context.Context, id kernel.UUID,
) (*restaurant.MenuItem, error) {
	args := m.Called(ctx, id)
	if item, ok := args.Get(0).(*restaurant.MenuItem); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMenuItemRepository) GetByRestaurant(
	ctx context.Context, restaurantID kernel.UUID,
) ([]*restaurant.MenuItem, error) {
	args := m.Called(ctx, restaurantID)
	if items, ok := args.Get(0).([]*restaurant.MenuItem); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRestaurantRepository) Update(ctx context.Context, aggregate *restaurant.Restaurant) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRestaurantRepository) Get(
	ctx context.Context, id kernel.UUID,
) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	if rest, ok := args.Get(0).(*restaurant.Restaurant); ok {
		return rest, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRestaurantRepository) GetByOwner(
	ctx context.Context, ownerID kernel.UUID,
) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, ownerID)
	if rest, ok := args.Get(0).(*restaurant.Restaurant); ok {
		return rest, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByOrder(
	ctx context.Context, orderID kernel.UUID,
) (*payment.Payment, error) {
	args := m.Called(ctx, orderID)
	if paid, ok := args.Get(0).(*payment.Payment); ok {
		return paid, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, aggregate *account.Customer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, aggregate *account.Customer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(
	ctx context.Context, id kernel.UUID,
) (*account.Customer, error) {
	args := m.Called(ctx, id)
	if customer, ok := args.Get(0).(*account.Customer); ok {
		return customer, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, aggregate *account.Courier) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, aggregate *account.Courier) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(
	ctx context.Context, id kernel.UUID,
) (*account.Courier, error) {
	args := m.Called(ctx, id)
	if courier, ok := args.Get(0).(*account.Courier); ok {
		return courier, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockGeocoder struct{ mock.Mock }

func (m *MockGeocoder) Resolve(ctx context.Context, address string) (kernel.GeoPoint, error) {
	args := m.Called(ctx, address)
	if point, ok := args.Get(0).(kernel.GeoPoint); ok {
		return point, args.Error(1)
	}
	return kernel.GeoPoint{}, args.Error(1)
}

// txMock implements the transaction lifecycle shared by every UoW mock.
type txMock struct{ mock.Mock }

func (m *txMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderUoW struct{ txMock }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCartUoW struct{ txMock }

func (m *MockCartUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockCartUoW) MenuItemRepository() ports.MenuItemRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuItemRepository)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
}

type MockCheckoutUoW struct{ txMock }

func (m *MockCheckoutUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockCheckoutUoW) MenuItemRepository() ports.MenuItemRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuItemRepository)
}

func (m *MockCheckoutUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

type MockKitchenUoW struct{ txMock }

func (m *MockKitchenUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockKitchenUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

type MockKitchenUoWFactory struct{ mock.Mock }

func (m *MockKitchenUoWFactory) Create() commands.KitchenUoW {
	args := m.Called()
	return args.Get(0).(commands.KitchenUoW)
}

type MockProfileUoW struct{ txMock }

func (m *MockProfileUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockProfileUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockProfileUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

type MockProfileUoWFactory struct{ mock.Mock }

func (m *MockProfileUoWFactory) Create() commands.ProfileUoW {
	args := m.Called()
	return args.Get(0).(commands.ProfileUoW)
}
