package queries

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrListTiersQueryIsNotConstructed = errors.New(
		"ListTiersQuery must be created via NewListTiersQuery constructor",
	)
	ErrResolveTierQueryIsNotConstructed = errors.New(
		"ResolveTierQuery must be created via NewResolveTierQuery constructor",
	)
)

// TierView is the read model of a price tier.
type TierView struct {
	ID           kernel.UUID
	ShopID       kernel.UUID
	MinWeight    decimal.Decimal
	MaxWeight    decimal.Decimal
	PricePerKilo decimal.Decimal
}

func tierView(t *pricing.Tier) TierView {
	return TierView{
		ID:           t.ID(),
		ShopID:       t.ShopID(),
		MinWeight:    t.MinWeight(),
		MaxWeight:    t.MaxWeight(),
		PricePerKilo: t.PricePerKilo(),
	}
}

// ListTiersQuery lists the tiers of a shop ordered by min weight.
type ListTiersQuery struct {
	shopID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListTiersQuery(shopID kernel.UUID) (ListTiersQuery, error) {
	if err := shopID.Validate(); err != nil {
		return ListTiersQuery{}, errs.NewValueIsRequiredErrorWithCause("shop_id", err)
	}
	return ListTiersQuery{shopID: shopID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListTiersQuery) Validate() error {
	return q.guard.Validate(ErrListTiersQueryIsNotConstructed)
}

// ResolveTierQuery finds the tier pricing a weight at a shop.
type ResolveTierQuery struct {
	shopID kernel.UUID
	weight decimal.Decimal

	guard guard.ConstructorGuard
}

// NewResolveTierQuery requires a shop id and a positive weight. The weight
// is rounded the way stored orders round it.
func NewResolveTierQuery(shopID kernel.UUID, weight decimal.Decimal) (ResolveTierQuery, error) {
	weight = kernel.Weight(weight)
	if err := errors.Join(
		shopID.Validate(),
		kernel.RequirePositive("weight", weight),
	); err != nil {
		return ResolveTierQuery{}, err
	}
	return ResolveTierQuery{shopID: shopID, weight: weight, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ResolveTierQuery) Validate() error {
	return q.guard.Validate(ErrResolveTierQueryIsNotConstructed)
}

// TierQueryHandler serves tier reads. Every call reads the committed tier
// set; nothing is cached.
type TierQueryHandler struct {
	db       *gorm.DB
	timeout  time.Duration
	resolver services.TierResolver
}

func NewTierQueryHandler(db *gorm.DB, timeout time.Duration) TierQueryHandler {
	return TierQueryHandler{db: db, timeout: timeout, resolver: services.NewTierResolver()}
}

// List returns the shop's tiers ordered by min weight.
func (h TierQueryHandler) List(ctx context.Context, query ListTiersQuery) ([]TierView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tiers, err := h.load(ctx, query.shopID)
	if err != nil {
		return nil, err
	}
	views := make([]TierView, 0, len(tiers))
	for _, t := range tiers {
		views = append(views, tierView(t))
	}
	return views, nil
}

// Resolve returns the tier covering the weight, or an error matching
// pricing.ErrInvalidWeightRange.
func (h TierQueryHandler) Resolve(ctx context.Context, query ResolveTierQuery) (TierView, error) {
	if err := query.Validate(); err != nil {
		return TierView{}, err
	}

	tiers, err := h.load(ctx, query.shopID)
	if err != nil {
		return TierView{}, err
	}
	t, err := h.resolver.Resolve(tiers, query.weight)
	if err != nil {
		return TierView{}, err
	}
	return tierView(t), nil
}

func (h TierQueryHandler) load(ctx context.Context, shopID kernel.UUID) ([]*pricing.Tier, error) {
	ctx, cancel := bounded(ctx, h.timeout)
	defer cancel()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, min_weight, max_weight, price_per_kilo
		FROM price_tiers
		WHERE shop_id = ?
		ORDER BY min_weight
	`, shopID.Bytes()).Rows()
	if err != nil {
		return nil, errs.NewPersistenceError("list tiers", err)
	}
	defer rows.Close()

	tiers := make([]*pricing.Tier, 0)
	for rows.Next() {
		var (
			id                   uuid.UUID
			minWeight, maxWeight decimal.Decimal
			price                decimal.Decimal
		)
		if err = rows.Scan(&id, &minWeight, &maxWeight, &price); err != nil {
			return nil, errs.NewPersistenceError("scan tier", err)
		}
		tierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		t, tierErr := pricing.NewTier(tierID, shopID, minWeight, maxWeight, price)
		if tierErr != nil {
			return nil, tierErr
		}
		tiers = append(tiers, t)
	}
	if err = rows.Err(); err != nil {
		return nil, errs.NewPersistenceError("list tiers", err)
	}
	return tiers, nil
}
