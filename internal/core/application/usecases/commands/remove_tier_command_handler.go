package commands

import (
	"context"
)

// RemoveTierCommandHandler deletes tiers by exact range. Removing a range
// that does not exist succeeds and changes nothing.
type RemoveTierCommandHandler struct {
	uowFactory TierUoWFactory
}

// NewRemoveTierCommandHandler creates a handler for tier removal.
func NewRemoveTierCommandHandler(uowFactory TierUoWFactory) RemoveTierCommandHandler {
	return RemoveTierCommandHandler{uowFactory: uowFactory}
}

// Handle reports whether a tier was removed.
func (h RemoveTierCommandHandler) Handle(ctx context.Context, cmd RemoveTierCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tierRepo := uow.TierRepository()
	if err := tierRepo.LockShop(ctx, cmd.ShopID()); err != nil {
		return false, err
	}

	removed, err := tierRepo.RemoveByRange(ctx, cmd.ShopID(), cmd.MinWeight(), cmd.MaxWeight())
	if err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return removed, nil
}
