package commands

import (
	"context"

	"laundry/internal/core/ports"
)

// CancelOrderCommandHandler cancels orders. A second cancel fails with
// order.ErrAlreadyCancelled and leaves the stored notes untouched.
type CancelOrderCommandHandler struct {
	uowFactory  UoWFactory
	broadcaster ports.Broadcaster
}

// NewCancelOrderCommandHandler creates a handler for cancellations.
func NewCancelOrderCommandHandler(uowFactory UoWFactory, broadcaster ports.Broadcaster) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory:  uowFactory,
		broadcaster: broadcaster,
	}
}

// Handle returns the parties of the cancelled order and broadcasts
// status_update to both after the commit.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (OrderChange, error) {
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

	if err = o.Cancel(cmd.Reason(), cmd.Notes()); err != nil {
		return OrderChange{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return OrderChange{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderChange{}, err
	}

	publishStatus(ctx, h.broadcaster, o)
	return changeOf(o), nil
}
