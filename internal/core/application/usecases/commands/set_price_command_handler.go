package commands

import (
	"context"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/ports"
)

// SetPriceCommandHandler applies a per-kilo quote. The order moves to
// Processing and the customer receives a pending notification about the
// price in the same transaction.
type SetPriceCommandHandler struct {
	uowFactory  UoWFactory
	shops       ports.ShopDirectory
	broadcaster ports.Broadcaster
}

// NewSetPriceCommandHandler creates a handler for price quotes.
func NewSetPriceCommandHandler(
	uowFactory UoWFactory,
	shops ports.ShopDirectory,
	broadcaster ports.Broadcaster,
) SetPriceCommandHandler {
	return SetPriceCommandHandler{
		uowFactory:  uowFactory,
		shops:       shops,
		broadcaster: broadcaster,
	}
}

// Handle returns the parties of the quoted order. Quoting an order that is
// not Pending fails with errs.ErrInvalidTransition and stores nothing.
func (h SetPriceCommandHandler) Handle(ctx context.Context, cmd SetPriceCommand) (OrderChange, error) {
	if err := cmd.Validate(); err != nil {
		return OrderChange{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return OrderChange{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return OrderChange{}, err
	}

	if err = o.SetPricePerKilo(cmd.PricePerKilo()); err != nil {
		return OrderChange{}, err
	}

	shop, err := h.shops.Shop(ctx, o.ShopID())
	if err != nil {
		return OrderChange{}, err
	}

	orderID := o.ID()
	n, err := notification.NewNotification(
		kernel.NewUUID(),
		o.CustomerID(),
		priceQuoteMessage(cmd),
		shop.Name,
		&orderID,
		time.Now(),
	)
	if err != nil {
		return OrderChange{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return OrderChange{}, err
	}
	if err = uow.NotificationRepository().Add(ctx, n); err != nil {
		return OrderChange{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderChange{}, err
	}

	publishStatus(ctx, h.broadcaster, o)
	return changeOf(o), nil
}

func priceQuoteMessage(cmd SetPriceCommand) string {
	return fmt.Sprintf("The shop set the price per kilo to ₱%s for your order.", cmd.PricePerKilo().StringFixed(2))
}
