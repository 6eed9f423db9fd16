package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
)

// CreateOrderCommandHandler places orders. The customer and the shop must
// exist; a weight-priced order must fall inside one of the shop's tiers.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, customers, shops, hub)
//	orderID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, pricing.ErrInvalidWeightRange) {
//	    // nothing was stored
//	}
type CreateOrderCommandHandler struct {
	uowFactory  UoWFactory
	customers   ports.CustomerDirectory
	shops       ports.ShopDirectory
	broadcaster ports.Broadcaster
	resolver    services.TierResolver
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	customers ports.CustomerDirectory,
	shops ports.ShopDirectory,
	broadcaster ports.Broadcaster,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		customers:   customers,
		shops:       shops,
		broadcaster: broadcaster,
		resolver:    services.NewTierResolver(),
	}
}

// Handle stores the order in Pending status with its cart lines and returns
// its identifier. After the commit the shop receives new_transaction and the
// customer transaction_update.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	customer, err := h.customers.Customer(ctx, cmd.CustomerID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if _, err = h.shops.Shop(ctx, cmd.ShopID()); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	details := cmd.Details()
	if cmd.IsWeightPriced() {
		tiers, listErr := uow.TierRepository().ListByShop(ctx, cmd.ShopID())
		if listErr != nil {
			return kernel.UUID{}, listErr
		}
		if _, err = h.resolver.Resolve(tiers, details.Weight); err != nil {
			return kernel.UUID{}, err
		}
	}

	now := time.Now()
	o, err := order.NewOrder(kernel.NewUUID(), order.Placement{
		CustomerID: cmd.CustomerID(),
		ShopID:     cmd.ShopID(),
		Customer: order.Customer{
			Name:  customer.Name,
			Email: customer.Email,
			Phone: customer.Phone,
		},
		Cart:          details.Cart,
		Weight:        details.Weight,
		Amounts:       details.Amounts,
		Delivery:      details.Delivery,
		Schedule:      details.Schedule,
		PaymentMethod: details.PaymentMethod,
		Notes:         details.Notes,
	}, now)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	event := placedEvent(o, now)
	h.broadcaster.Broadcast(ctx, ports.ShopGroup(o.ShopID()), ports.EventNewTransaction, event)
	h.broadcaster.Broadcast(ctx, ports.UserGroup(o.CustomerID()), ports.EventTransactionUpdate, event)

	return o.ID(), nil
}
