package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"dinedash/internal/adapters/out/postgres"
	"dinedash/internal/adapters/out/postgres/accountrepo"
	"dinedash/internal/adapters/out/postgres/orderrepo"
	"dinedash/internal/adapters/out/postgres/paymentrepo"
	"dinedash/internal/adapters/out/postgres/restaurantrepo"
	"dinedash/internal/core/domain/model/kernel"
	"dinedash/internal/core/domain/model/order"
	"dinedash/internal/core/domain/model/payment"
	"dinedash/internal/pkg/errs"
)

// UnitOfWorkIntegrationTestSuite verifies that checkout-style multi-table
// writes commit and roll back as one unit.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.OrderRejectionDTO{},
		&accountrepo.CustomerDTO{},
		&accountrepo.CourierDTO{},
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.MenuItemDTO{},
		&paymentrepo.PaymentDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, order_rejections, payments",
	).Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) placedOrder() *order.Order {
	cart, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	menuItemID := kernel.NewUUID()
	suite.Require().NoError(cart.SetItemQuantity(menuItemID, 2))
	suite.Require().NoError(cart.Place(
		map[kernel.UUID]decimal.Decimal{menuItemID: decimal.NewFromFloat(6.75)},
		time.Now().UTC(),
	))

	return cart
}

func (suite *UnitOfWorkIntegrationTestSuite) newPayment(aggregate *order.Order) *payment.Payment {
	card, err := payment.NewCard(
		payment.MethodDebitCard, "Pat Doe", nil, "4111111111111111", 6, 2031, "9999",
	)
	suite.Require().NoError(err)

	paid, err := payment.NewPayment(
		kernel.NewUUID(), aggregate.ID(), aggregate.CustomerID(),
		*aggregate.TotalCost(), card,
	)
	suite.Require().NoError(err)
	return paid
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsOrderAndPaymentTogether() {
	ctx := context.Background()
	aggregate := suite.placedOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.PaymentRepository().Add(ctx, suite.newPayment(aggregate)))
	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	loaded, err := verify.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Placed, loaded.Status())

	paid, err := verify.PaymentRepository().GetByOrder(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(paid.AmountPaid().Equal(*aggregate.TotalCost()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsEverything() {
	ctx := context.Background()
	aggregate := suite.placedOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.PaymentRepository().Add(ctx, suite.newPayment(aggregate)))
	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()
	_, err := verify.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = verify.PaymentRepository().GetByOrder(ctx, aggregate.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSecondPaymentForOrder_Conflicts() {
	ctx := context.Background()
	aggregate := suite.placedOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.PaymentRepository().Add(ctx, suite.newPayment(aggregate)))
	suite.Require().NoError(uow.Commit(ctx))

	again := suite.factory.Create()
	suite.Require().NoError(again.Begin(ctx))
	err := again.PaymentRepository().Add(ctx, suite.newPayment(aggregate))
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.Require().NoError(again.Rollback(ctx))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
