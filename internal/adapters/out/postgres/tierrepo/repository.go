package tierrepo

import (
	"context"

	"laundry/internal/adapters/out/postgres/storeerr"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormTierRepository implements TierRepository using GORM.
type GormTierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTierRepository creates a new GORM tier repository.
func NewGormTierRepository(db *gorm.DB, tracker aggregateTracker) *GormTierRepository {
	return &GormTierRepository{
		db:      db,
		tracker: tracker,
	}
}

// LockShop takes a transaction-scoped advisory lock keyed by the shop. It
// must run inside a transaction; outside one the lock is released at once.
func (r *GormTierRepository) LockShop(ctx context.Context, shopID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return err
	}
	err := r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", "price_tiers:"+shopID.String()).Error
	return storeerr.Wrap("lock shop tiers", err)
}

// ListByShop returns the tiers of a shop ordered by min weight.
func (r *GormTierRepository) ListByShop(ctx context.Context, shopID kernel.UUID) ([]*pricing.Tier, error) {
	if err := shopID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TierDTO
	err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID.Bytes()).
		Order("min_weight").
		Find(&dtos).Error
	if err != nil {
		return nil, storeerr.Wrap("list tiers", err)
	}

	tiers := make([]*pricing.Tier, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, t)
	}
	return tiers, nil
}

// Add saves a new tier to the database.
func (r *GormTierRepository) Add(ctx context.Context, tier *pricing.Tier) error {
	if err := tier.Validate(); err != nil {
		return err
	}

	dto := fromDomain(tier)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return storeerr.Wrap("insert tier", err)
	}

	r.tracker.TrackAggregate(tier.ID(), tier)
	return nil
}

// RemoveByRange deletes the tier of shopID spanning exactly [minWeight, maxWeight].
func (r *GormTierRepository) RemoveByRange(
	ctx context.Context, shopID kernel.UUID, minWeight, maxWeight decimal.Decimal,
) (bool, error) {
	if err := shopID.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Where("shop_id = ? AND min_weight = ? AND max_weight = ?",
			shopID.Bytes(), minWeight.Round(kernel.WeightPlaces), maxWeight.Round(kernel.WeightPlaces)).
		Delete(&TierDTO{})
	if result.Error != nil {
		return false, storeerr.Wrap("delete tier", result.Error)
	}
	return result.RowsAffected > 0, nil
}
