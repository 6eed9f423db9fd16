package commands_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockTierRepository struct{ mock.Mock }

func (m *MockTierRepository) LockShop(ctx context.Context, shopID kernel.UUID) error {
	args := m.Called(ctx, shopID)
	return args.Error(0)
}

func (m *MockTierRepository) ListByShop(ctx context.Context, shopID kernel.UUID) ([]*pricing.Tier, error) {
	args := m.Called(ctx, shopID)
	tiers, _ := args.Get(0).([]*pricing.Tier)
	return tiers, args.Error(1)
}

func (m *MockTierRepository) Add(ctx context.Context, t *pricing.Tier) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTierRepository) RemoveByRange(
	ctx context.Context,
	shopID kernel.UUID,
	minWeight, maxWeight decimal.Decimal,
) (bool, error) {
	args := m.Called(ctx, shopID, minWeight, maxWeight)
	return args.Bool(0), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	n, _ := args.Get(0).(*notification.Notification)
	return n, args.Error(1)
}

type MockTxManager struct{ mock.Mock }

func (m *MockTxManager) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTxManager) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTxManager) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockUoW struct {
	MockTxManager
	orders        *MockOrderRepository
	tiers         *MockTierRepository
	notifications *MockNotificationRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		orders:        new(MockOrderRepository),
		tiers:         new(MockTierRepository),
		notifications: new(MockNotificationRepository),
	}
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.orders
}

func (m *MockUoW) TierRepository() ports.TierRepository {
	return m.tiers
}

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	return m.notifications
}

func (m *MockUoW) AssertAll(t *testing.T) {
	t.Helper()
	m.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.tiers.AssertExpectations(t)
	m.notifications.AssertExpectations(t)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockTierUoW struct {
	MockTxManager
	tiers *MockTierRepository
}

func (m *MockTierUoW) TierRepository() ports.TierRepository {
	return m.tiers
}

type MockTierUoWFactory struct{ mock.Mock }

func (m *MockTierUoWFactory) Create() commands.TierUoW {
	args := m.Called()
	return args.Get(0).(commands.TierUoW)
}

type MockCustomerDirectory struct{ mock.Mock }

func (m *MockCustomerDirectory) Customer(ctx context.Context, id kernel.UUID) (ports.Customer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.Customer), args.Error(1)
}

type MockShopDirectory struct{ mock.Mock }

func (m *MockShopDirectory) Shop(ctx context.Context, id kernel.UUID) (ports.Shop, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.Shop), args.Error(1)
}

type MockBroadcaster struct{ mock.Mock }

func (m *MockBroadcaster) Broadcast(ctx context.Context, group ports.GroupKey, event string, payload any) {
	m.Called(ctx, group, event, payload)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testCart(t *testing.T) order.Cart {
	t.Helper()
	cart, err := order.NewCart(
		[]order.ServiceLine{{Name: "Wash & Fold", Price: dec("200")}},
		[]order.ItemLine{{Name: "Shirt", Quantity: 4}},
	)
	require.NoError(t, err)
	return cart
}

func newTestOrder(t *testing.T, weight string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), order.Placement{
		CustomerID: kernel.NewUUID(),
		ShopID:     kernel.NewUUID(),
		Cart:       testCart(t),
		Weight:     dec(weight),
		Amounts:    order.Amounts{Subtotal: dec("200"), DeliveryFee: dec("30"), VoucherDiscount: dec("20")},
		Delivery:   order.Delivery{Type: "pickup"},
	}, time.Now())
	require.NoError(t, err)
	return o
}
