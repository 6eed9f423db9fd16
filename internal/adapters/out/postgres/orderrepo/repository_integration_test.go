package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(orderrepo.Models()...))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTripsEveryField() {
	ctx := context.Background()
	original := suite.createTestOrder("2.5")
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()

	suite.Require().NoError(suite.repository.Add(ctx, original))

	loaded, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(original.ID(), loaded.ID())
	suite.Equal(original.CustomerID(), loaded.CustomerID())
	suite.Equal(original.ShopID(), loaded.ShopID())
	suite.Equal(original.Customer(), loaded.Customer())
	suite.Equal([]string{"Wash & Fold", "Ironing"}, loaded.Cart().ServiceNames())
	suite.Equal([]order.ItemLine{{Name: "Shirt", Quantity: 3}, {Name: "Pants", Quantity: 2}}, loaded.Cart().Items())
	suite.True(loaded.Weight().Equal(decimal.RequireFromString("2.5")))
	suite.True(loaded.TotalAmount().Equal(original.TotalAmount()), loaded.TotalAmount().String())
	suite.Equal(original.Delivery(), loaded.Delivery())
	suite.Equal(original.Schedule(), loaded.Schedule())
	suite.Equal(order.Pending, loaded.Status())
	suite.Nil(loaded.PricePerKilo())
	suite.WithinDuration(original.CreatedAt(), loaded.CreatedAt(), time.Millisecond)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnconstructedOrder_ReturnsError() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertOrderCount(0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsQuoteAndStatus() {
	ctx := context.Background()
	o := suite.createTestOrder("3.5")
	suite.tracker.On("TrackAggregate", o.ID(), o).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.SetPricePerKilo(decimal.NewFromInt(50)))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, loaded.Status())
	suite.Require().NotNil(loaded.PricePerKilo())
	suite.True(loaded.PricePerKilo().Equal(decimal.NewFromInt(50)))
	suite.True(loaded.Subtotal().Equal(o.Subtotal()), loaded.Subtotal().String())
	suite.True(loaded.TotalAmount().Equal(o.TotalAmount()), loaded.TotalAmount().String())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_CancellationNotes() {
	ctx := context.Background()
	o := suite.createTestOrder("0")
	suite.tracker.On("TrackAggregate", o.ID(), o).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.Cancel("Changed mind", "sorry"))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, loaded.Status())
	suite.Equal("Cancelled - Changed mind: sorry", loaded.Notes())
	suite.False(loaded.IsWeightPriced())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.createTestOrder("0"))

	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_Errors() {
	testCases := []struct {
		name   string
		id     kernel.UUID
		target error
	}{
		{name: "zero id", id: kernel.UUID{}, target: kernel.ErrUUIDIsNotConstructed},
		{name: "unknown id", id: kernel.NewUUID(), target: errs.ErrObjectNotFound},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			o, err := suite.repository.Get(context.Background(), tc.id)
			suite.Nil(o)
			suite.Require().ErrorIs(err, tc.target)
		})
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_BlocksSecondLocker() {
	ctx := context.Background()
	o := suite.createTestOrder("0")
	suite.tracker.On("TrackAggregate", o.ID(), o).Once()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	tx := suite.db.Begin()
	defer tx.Rollback()
	_, err := orderrepo.NewGormOrderRepository(tx, suite.tracker).GetForUpdate(ctx, o.ID())
	suite.Require().NoError(err)

	other := suite.db.Begin()
	defer other.Rollback()
	suite.Require().NoError(other.Exec("SET LOCAL lock_timeout = '200ms'").Error)
	_, err = orderrepo.NewGormOrderRepository(other, suite.tracker).GetForUpdate(ctx, o.ID())

	var persistence *errs.PersistenceError
	suite.Require().ErrorAs(err, &persistence)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(weight string) *order.Order {
	cart, err := order.NewCart(
		[]order.ServiceLine{
			{Name: "Wash & Fold", Price: decimal.NewFromInt(150)},
			{Name: "Ironing", Price: decimal.NewFromInt(50)},
		},
		[]order.ItemLine{{Name: "Shirt", Quantity: 3}, {Name: "Pants", Quantity: 2}},
	)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), order.Placement{
		CustomerID: kernel.NewUUID(),
		ShopID:     kernel.NewUUID(),
		Customer:   order.Customer{Name: "Maria Clara", Email: "maria@example.com", Phone: "09170000000"},
		Cart:       cart,
		Weight:     decimal.RequireFromString(weight),
		Amounts: order.Amounts{
			Subtotal:        decimal.NewFromInt(200),
			DeliveryFee:     decimal.NewFromInt(30),
			VoucherDiscount: decimal.NewFromInt(10),
		},
		Delivery: order.Delivery{Type: "delivery", Zone: "Zone 2", Street: "Mabini St", Barangay: "San Roque", Building: "Unit 4"},
		Schedule: order.Schedule{Date: "2025-03-01", Time: "10:00"},
	}, time.Now())
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
