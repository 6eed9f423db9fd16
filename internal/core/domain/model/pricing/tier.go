package pricing

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrTierIsNotConstructed is returned when a Tier was not built by NewTier.
	ErrTierIsNotConstructed = errors.New("Tier must be created via NewTier constructor")

	// ErrInvalidWeightRange is returned when no tier of the shop covers a weight.
	ErrInvalidWeightRange = errors.New("invalid kilo range")

	// ErrTierOverlap is the cause of the conflict returned when a new tier
	// would share weights with an existing one.
	ErrTierOverlap = errors.New("weight range overlaps an existing tier")
)

// Tier prices the weight range [min, max] of one shop.
type Tier struct {
	id           kernel.UUID
	shopID       kernel.UUID
	minWeight    decimal.Decimal
	maxWeight    decimal.Decimal
	pricePerKilo decimal.Decimal

	isConstructed bool
}

// NewTier validates and builds a tier. min must be >= 0 and below max, and
// the price must be positive.
func NewTier(id, shopID kernel.UUID, minWeight, maxWeight, pricePerKilo decimal.Decimal) (*Tier, error) {
	t := &Tier{isConstructed: true}

	if err := errors.Join(
		t.setID(id),
		t.setShopID(shopID),
		t.setRange(minWeight, maxWeight),
		t.setPrice(pricePerKilo),
	); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate ensures the Tier was built through NewTier.
func (t *Tier) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTierIsNotConstructed
	}
	return nil
}

func (t *Tier) ID() kernel.UUID {
	return t.id
}

func (t *Tier) ShopID() kernel.UUID {
	return t.shopID
}

// MinWeight returns the inclusive lower bound in kilograms.
func (t *Tier) MinWeight() decimal.Decimal {
	return t.minWeight
}

// MaxWeight returns the inclusive upper bound in kilograms.
func (t *Tier) MaxWeight() decimal.Decimal {
	return t.maxWeight
}

func (t *Tier) PricePerKilo() decimal.Decimal {
	return t.pricePerKilo
}

// Contains reports whether min <= weight <= max.
func (t *Tier) Contains(weight decimal.Decimal) bool {
	return t.minWeight.LessThanOrEqual(weight) && weight.LessThanOrEqual(t.maxWeight)
}

// HasRange reports whether the tier spans exactly [minWeight, maxWeight].
func (t *Tier) HasRange(minWeight, maxWeight decimal.Decimal) bool {
	return t.minWeight.Equal(minWeight) && t.maxWeight.Equal(maxWeight)
}

// Overlaps reports whether the two ranges share more than a boundary point.
// It applies three checks: other's min lies inside t, other's max lies
// inside t, or t's min lies inside other.
func (t *Tier) Overlaps(other *Tier) bool {
	minInside := t.minWeight.LessThanOrEqual(other.minWeight) && other.minWeight.LessThan(t.maxWeight)
	maxInside := t.minWeight.LessThan(other.maxWeight) && other.maxWeight.LessThanOrEqual(t.maxWeight)
	covers := other.minWeight.LessThanOrEqual(t.minWeight) && t.minWeight.LessThan(other.maxWeight)
	return minInside || maxInside || covers
}

// Price returns weight × price per kilo rounded to centavos.
func (t *Tier) Price(weight decimal.Decimal) decimal.Decimal {
	return kernel.Money(weight.Mul(t.pricePerKilo))
}

// String renders the range as "[min, max] @ price".
func (t *Tier) String() string {
	return fmt.Sprintf("[%s, %s] @ %s", t.minWeight, t.maxWeight, t.pricePerKilo)
}

func (t *Tier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Tier) setShopID(shopID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shop_id", err)
	}
	t.shopID = shopID
	return nil
}

func (t *Tier) setRange(minWeight, maxWeight decimal.Decimal) error {
	minWeight = minWeight.Round(kernel.WeightPlaces)
	maxWeight = maxWeight.Round(kernel.WeightPlaces)
	if err := kernel.RequireNonNegative("min_weight", minWeight); err != nil {
		return err
	}
	if !minWeight.LessThan(maxWeight) {
		return errs.NewValueIsOutOfRangeError("max_weight", maxWeight, minWeight, "unbounded")
	}
	t.minWeight = minWeight
	t.maxWeight = maxWeight
	return nil
}

func (t *Tier) setPrice(price decimal.Decimal) error {
	if err := kernel.RequirePositive("price_per_kilo", price); err != nil {
		return err
	}
	t.pricePerKilo = kernel.Money(price)
	return nil
}
