package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
)

// TierRepository defines the persistence contract for price tiers.
type TierRepository interface {
	// LockShop serializes tier changes of one shop until the surrounding
	// transaction ends. Overlap checks run after taking the lock.
	LockShop(ctx context.Context, shopID kernel.UUID) error

	// ListByShop returns the committed tiers of a shop ordered by min weight.
	ListByShop(ctx context.Context, shopID kernel.UUID) ([]*pricing.Tier, error)

	// Add persists a new tier.
	Add(ctx context.Context, tier *pricing.Tier) error

	// RemoveByRange deletes the tier spanning exactly [minWeight, maxWeight]
	// and reports whether one existed.
	RemoveByRange(ctx context.Context, shopID kernel.UUID, minWeight, maxWeight decimal.Decimal) (bool, error)
}
