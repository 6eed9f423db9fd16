package commands_test

import (
	"errors"
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type createOrderFixture struct {
	customers   *MockCustomerDirectory
	shops       *MockShopDirectory
	broadcaster *MockBroadcaster
	uow         *MockUoW
	factory     *MockUoWFactory
	handler     commands.CreateOrderCommandHandler
	customerID  kernel.UUID
	shopID      kernel.UUID
}

func newCreateOrderFixture() *createOrderFixture {
	f := &createOrderFixture{
		customers:   new(MockCustomerDirectory),
		shops:       new(MockShopDirectory),
		broadcaster: new(MockBroadcaster),
		uow:         newMockUoW(),
		factory:     new(MockUoWFactory),
		customerID:  kernel.NewUUID(),
		shopID:      kernel.NewUUID(),
	}
	f.handler = commands.NewCreateOrderCommandHandler(f.factory, f.customers, f.shops, f.broadcaster)
	return f
}

func (f *createOrderFixture) command(t *testing.T, weight string) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(f.customerID, f.shopID, commands.OrderDetails{
		Cart:     testCart(t),
		Weight:   dec(weight),
		Amounts:  order.Amounts{Subtotal: dec("200"), DeliveryFee: dec("30"), VoucherDiscount: dec("20")},
		Delivery: order.Delivery{Type: "delivery", Zone: "Zone 2"},
	})
	require.NoError(t, err)
	return cmd
}

func (f *createOrderFixture) expectDirectories() {
	f.customers.On("Customer", mock.Anything, f.customerID).
		Return(ports.Customer{ID: f.customerID, Name: "Ana", Email: "ana@example.com", Phone: "0917"}, nil).Once()
	f.shops.On("Shop", mock.Anything, f.shopID).Return(ports.Shop{ID: f.shopID, Name: "Suds"}, nil).Once()
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture()
	f.expectDirectories()

	var stored *order.Order
	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
	)
	f.uow.On("Rollback", ctx).Return(nil).Once()
	var toShop, toCustomer ports.OrderPlacedEvent
	f.broadcaster.On("Broadcast", ctx, ports.ShopGroup(f.shopID), ports.EventNewTransaction, mock.AnythingOfType("ports.OrderPlacedEvent")).
		Run(func(args mock.Arguments) { toShop = args.Get(3).(ports.OrderPlacedEvent) }).Once()
	f.broadcaster.On("Broadcast", ctx, ports.UserGroup(f.customerID), ports.EventTransactionUpdate, mock.AnythingOfType("ports.OrderPlacedEvent")).
		Run(func(args mock.Arguments) { toCustomer = args.Get(3).(ports.OrderPlacedEvent) }).Once()

	id, err := f.handler.Handle(ctx, f.command(t, "0"))

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, id.IsEqual(stored.ID()))
	assert.Equal(t, order.Pending, stored.Status())
	assert.True(t, stored.TotalAmount().Equal(dec("210")))
	assert.Equal(t, "Ana", stored.Customer().Name)

	assert.Equal(t, toShop, toCustomer)
	assert.Equal(t, id.String(), toShop.OrderID)
	assert.Equal(t, "Ana", toShop.CustomerName)
	assert.Equal(t, "Wash & Fold", toShop.ServiceName)
	assert.Equal(t, []ports.ServiceLinePayload{{Name: "Wash & Fold", Price: "200.00"}}, toShop.Services)
	assert.Equal(t, []ports.ItemLinePayload{{Name: "Shirt", Quantity: 4}}, toShop.Items)
	assert.Nil(t, toShop.KiloAmount)
	assert.Equal(t, "200.00", toShop.Subtotal)
	assert.Equal(t, "30.00", toShop.DeliveryFee)
	assert.Equal(t, "20.00", toShop.VoucherDiscount)
	assert.Equal(t, "210.00", toShop.TotalAmount)
	assert.Equal(t, "delivery", toShop.DeliveryType)
	assert.Equal(t, "Zone 2", toShop.Zone)
	assert.Equal(t, order.DefaultPaymentMethod, toShop.PaymentMethod)
	assert.Equal(t, "Pending", toShop.Status)
	assert.Equal(t, stored.CreatedAt(), toShop.CreatedAt)
	f.uow.AssertAll(t)
	f.broadcaster.AssertExpectations(t)
	f.factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_WeightInsideTier(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture()
	f.expectDirectories()

	low, err := pricing.NewTier(kernel.NewUUID(), f.shopID, dec("0"), dec("5"), dec("50"))
	require.NoError(t, err)

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.tiers.On("ListByShop", ctx, f.shopID).Return([]*pricing.Tier{low}, nil).Once()
	f.uow.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	var event ports.OrderPlacedEvent
	f.broadcaster.On("Broadcast", ctx, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { event = args.Get(3).(ports.OrderPlacedEvent) }).Twice()

	_, err = f.handler.Handle(ctx, f.command(t, "3"))

	require.NoError(t, err)
	require.NotNil(t, event.KiloAmount)
	assert.Equal(t, "3.000", *event.KiloAmount)
	f.uow.AssertAll(t)
}

func TestCreateOrderCommandHandler_Handle_WeightOutsideTiers(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture()
	f.expectDirectories()

	low, err := pricing.NewTier(kernel.NewUUID(), f.shopID, dec("0"), dec("5"), dec("50"))
	require.NoError(t, err)
	high, err := pricing.NewTier(kernel.NewUUID(), f.shopID, dec("5"), dec("10"), dec("45"))
	require.NoError(t, err)

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.tiers.On("ListByShop", ctx, f.shopID).Return([]*pricing.Tier{low, high}, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err = f.handler.Handle(ctx, f.command(t, "12"))

	require.ErrorIs(t, err, pricing.ErrInvalidWeightRange)
	f.uow.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.broadcaster.AssertNotCalled(t, "Broadcast", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.uow.AssertAll(t)
}

func TestCreateOrderCommandHandler_Handle_ResolvesRoundedWeight(t *testing.T) {
	testCases := []struct {
		name   string
		weight string
		stored string
		min    string
		max    string
	}{
		{"rounds down onto the upper bound", "10.0004", "10", "5", "10"},
		{"rounds up onto the next tier", "4.9996", "5", "5", "10"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			f := newCreateOrderFixture()
			f.expectDirectories()

			tier, err := pricing.NewTier(kernel.NewUUID(), f.shopID, dec(tc.min), dec(tc.max), dec("45"))
			require.NoError(t, err)

			var stored *order.Order
			f.factory.On("Create").Return(f.uow).Once()
			f.uow.On("Begin", ctx).Return(nil).Once()
			f.uow.tiers.On("ListByShop", ctx, f.shopID).Return([]*pricing.Tier{tier}, nil).Once()
			f.uow.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).
				Run(func(args mock.Arguments) { stored = args.Get(1).(*order.Order) }).
				Return(nil).Once()
			f.uow.On("Commit", ctx).Return(nil).Once()
			f.uow.On("Rollback", ctx).Return(nil).Once()
			f.broadcaster.On("Broadcast", ctx, mock.Anything, mock.Anything, mock.Anything).Twice()

			_, err = f.handler.Handle(ctx, f.command(t, tc.weight))

			require.NoError(t, err)
			require.NotNil(t, stored)
			assert.True(t, stored.Weight().Equal(dec(tc.stored)), stored.Weight().String())
			f.uow.AssertAll(t)
		})
	}
}

func TestCreateOrderCommandHandler_Handle_UnknownCustomer(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture()
	f.customers.On("Customer", ctx, f.customerID).
		Return(ports.Customer{}, errs.NewObjectNotFoundError("customer", f.customerID)).Once()

	_, err := f.handler.Handle(ctx, f.command(t, "0"))

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.factory.AssertNotCalled(t, "Create")
	f.shops.AssertNotCalled(t, "Shop", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_UnknownShop(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture()
	f.customers.On("Customer", ctx, f.customerID).Return(ports.Customer{ID: f.customerID}, nil).Once()
	f.shops.On("Shop", ctx, f.shopID).Return(ports.Shop{}, errs.NewObjectNotFoundError("shop", f.shopID)).Once()

	_, err := f.handler.Handle(ctx, f.command(t, "0"))

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	f := newCreateOrderFixture()

	_, err := f.handler.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture()
	f.expectDirectories()
	mock.InOrder(
		f.factory.On("Create").Return(f.uow).Once(),
		f.uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	_, err := f.handler.Handle(ctx, f.command(t, "0"))

	require.Error(t, err)
	f.uow.AssertNotCalled(t, "Rollback", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture()
	f.expectDirectories()

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(errs.NewPersistenceError("commit", errors.New("connection reset"))).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err := f.handler.Handle(ctx, f.command(t, "0"))

	require.ErrorIs(t, err, errs.ErrPersistence)
	f.broadcaster.AssertNotCalled(t, "Broadcast", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.uow.AssertAll(t)
}
