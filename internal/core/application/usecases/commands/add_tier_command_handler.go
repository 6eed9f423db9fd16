package commands

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/core/domain/services"
)

// AddTierCommandHandler inserts tiers. The shop's tier set is locked before
// the overlap check, so two concurrent inserts of overlapping ranges cannot
// both succeed.
type AddTierCommandHandler struct {
	uowFactory TierUoWFactory
	resolver   services.TierResolver
}

// NewAddTierCommandHandler creates a handler for tier inserts.
func NewAddTierCommandHandler(uowFactory TierUoWFactory) AddTierCommandHandler {
	return AddTierCommandHandler{
		uowFactory: uowFactory,
		resolver:   services.NewTierResolver(),
	}
}

// Handle returns the new tier id, or a conflict wrapping
// pricing.ErrTierOverlap.
func (h AddTierCommandHandler) Handle(ctx context.Context, cmd AddTierCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	tier, err := pricing.NewTier(kernel.NewUUID(), cmd.ShopID(), cmd.MinWeight(), cmd.MaxWeight(), cmd.PricePerKilo())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tierRepo := uow.TierRepository()
	if err = tierRepo.LockShop(ctx, cmd.ShopID()); err != nil {
		return kernel.UUID{}, err
	}

	existing, err := tierRepo.ListByShop(ctx, cmd.ShopID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = h.resolver.CheckOverlap(existing, tier); err != nil {
		return kernel.UUID{}, err
	}

	if err = tierRepo.Add(ctx, tier); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return tier.ID(), nil
}
