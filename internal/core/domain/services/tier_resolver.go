package services

import (
	"fmt"

	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// TierResolver is a domain service working on the full tier set of one shop.
//
// Business rules:
//   - a weight resolves to exactly one tier or to pricing.ErrInvalidWeightRange
//   - on a shared boundary the tier with the greatest min wins
//   - a new tier must not overlap any existing one
//
// Example usage:
//
//	resolver := services.NewTierResolver()
//	tier, err := resolver.Resolve(tiers, weight)
//	if errors.Is(err, pricing.ErrInvalidWeightRange) {
//	    // reject the order
//	}
type TierResolver struct{}

// NewTierResolver creates a new TierResolver instance.
func NewTierResolver() TierResolver {
	return TierResolver{}
}

// Resolve returns the tier covering weight.
func (r TierResolver) Resolve(tiers []*pricing.Tier, weight decimal.Decimal) (*pricing.Tier, error) {
	var best *pricing.Tier

	for _, t := range tiers {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if !t.Contains(weight) {
			continue
		}
		if best == nil || t.MinWeight().GreaterThan(best.MinWeight()) {
			best = t
		}
	}

	if best == nil {
		return nil, fmt.Errorf("%w: no tier covers %s kg", pricing.ErrInvalidWeightRange, weight)
	}
	return best, nil
}

// CheckOverlap returns a conflict error wrapping pricing.ErrTierOverlap when
// candidate overlaps any of the existing tiers.
func (r TierResolver) CheckOverlap(existing []*pricing.Tier, candidate *pricing.Tier) error {
	if err := candidate.Validate(); err != nil {
		return err
	}

	for _, t := range existing {
		if err := t.Validate(); err != nil {
			return err
		}
		if t.Overlaps(candidate) {
			return errs.NewConflictErrorWithCause("tier", fmt.Sprintf("%s collides with %s", candidate, t), pricing.ErrTierOverlap)
		}
	}
	return nil
}
