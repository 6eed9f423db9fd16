package http_test

import (
	"context"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockCreateOrder struct{ mock.Mock }

func (m *MockCreateOrder) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockSetPrice struct{ mock.Mock }

func (m *MockSetPrice) Handle(ctx context.Context, cmd commands.SetPriceCommand) (commands.OrderChange, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.OrderChange), args.Error(1)
}

type MockUpdateStatus struct{ mock.Mock }

func (m *MockUpdateStatus) Handle(ctx context.Context, cmd commands.UpdateStatusCommand) (commands.OrderChange, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.OrderChange), args.Error(1)
}

type MockCancelOrder struct{ mock.Mock }

func (m *MockCancelOrder) Handle(ctx context.Context, cmd commands.CancelOrderCommand) (commands.OrderChange, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.OrderChange), args.Error(1)
}

type MockAddTier struct{ mock.Mock }

func (m *MockAddTier) Handle(ctx context.Context, cmd commands.AddTierCommand) (kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockRemoveTier struct{ mock.Mock }

func (m *MockRemoveTier) Handle(ctx context.Context, cmd commands.RemoveTierCommand) (bool, error) {
	args := m.Called(ctx, cmd)
	return args.Bool(0), args.Error(1)
}

type MockCreateNotification struct{ mock.Mock }

func (m *MockCreateNotification) Handle(ctx context.Context, cmd commands.CreateNotificationCommand) (kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockAnswerNotification struct{ mock.Mock }

func (m *MockAnswerNotification) Handle(ctx context.Context, cmd commands.AnswerNotificationCommand) (commands.AnswerResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.AnswerResult), args.Error(1)
}

type MockMarkNotificationRead struct{ mock.Mock }

func (m *MockMarkNotificationRead) Handle(ctx context.Context, cmd commands.MarkNotificationReadCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetOrder struct{ mock.Mock }

func (m *MockGetOrder) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderView), args.Error(1)
}

type MockListShopOrders struct{ mock.Mock }

func (m *MockListShopOrders) Handle(ctx context.Context, query queries.ListShopOrdersQuery) ([]queries.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.OrderView), args.Error(1)
}

type MockListCustomerOrders struct{ mock.Mock }

func (m *MockListCustomerOrders) Handle(ctx context.Context, query queries.ListCustomerOrdersQuery) ([]queries.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.OrderView), args.Error(1)
}

type MockTierReader struct{ mock.Mock }

func (m *MockTierReader) List(ctx context.Context, query queries.ListTiersQuery) ([]queries.TierView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.TierView), args.Error(1)
}

func (m *MockTierReader) Resolve(ctx context.Context, query queries.ResolveTierQuery) (queries.TierView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.TierView), args.Error(1)
}

type MockServicePrice struct{ mock.Mock }

func (m *MockServicePrice) Handle(ctx context.Context, query queries.GetServicePriceQuery) (decimal.Decimal, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type MockListNotifications struct{ mock.Mock }

func (m *MockListNotifications) Handle(ctx context.Context, query queries.ListNotificationsQuery) ([]queries.NotificationView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.NotificationView), args.Error(1)
}
