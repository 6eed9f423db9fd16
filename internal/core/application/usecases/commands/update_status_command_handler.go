package commands

import (
	"context"

	"laundry/internal/core/ports"
)

// UpdateStatusCommandHandler moves an order to a new status. The order row is
// locked for the whole transaction, so of two concurrent transitions from
// the same state only the first succeeds; the second sees the new state and
// fails with errs.ErrInvalidTransition.
type UpdateStatusCommandHandler struct {
	uowFactory  UoWFactory
	broadcaster ports.Broadcaster
}

// NewUpdateStatusCommandHandler creates a handler for status changes.
func NewUpdateStatusCommandHandler(uowFactory UoWFactory, broadcaster ports.Broadcaster) UpdateStatusCommandHandler {
	return UpdateStatusCommandHandler{
		uowFactory:  uowFactory,
		broadcaster: broadcaster,
	}
}

// Handle returns the parties of the changed order and broadcasts
// status_update to both after the commit.
func (h UpdateStatusCommandHandler) Handle(ctx context.Context, cmd UpdateStatusCommand) (OrderChange, error) {
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

	if err = o.ChangeStatus(cmd.Status(), cmd.Notes()); err != nil {
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
