package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrAddTierCommandIsNotConstructed = errors.New(
		"AddTierCommand must be created via NewAddTierCommand constructor",
	)
)

// AddTierCommand adds a weight tier to a shop's price list.
//
// Example:
//
//	cmd, err := NewAddTierCommand(shopID, decimal.NewFromInt(0), decimal.NewFromInt(5), decimal.NewFromInt(50))
//	tierID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, pricing.ErrTierOverlap) {
//	    // the price list is unchanged
//	}
type AddTierCommand struct { //nolint:recvcheck //using for validation
	shopID       kernel.UUID
	minWeight    decimal.Decimal
	maxWeight    decimal.Decimal
	pricePerKilo decimal.Decimal

	guard guard.ConstructorGuard
}

// NewAddTierCommand checks the shop id; range and price rules are enforced
// by the tier itself.
func NewAddTierCommand(shopID kernel.UUID, minWeight, maxWeight, pricePerKilo decimal.Decimal) (AddTierCommand, error) {
	if err := shopID.Validate(); err != nil {
		return AddTierCommand{}, errs.NewValueIsRequiredErrorWithCause("shop_id", err)
	}

	return AddTierCommand{
		shopID:       shopID,
		minWeight:    minWeight,
		maxWeight:    maxWeight,
		pricePerKilo: pricePerKilo,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddTierCommand) Validate() error {
	return c.guard.Validate(ErrAddTierCommandIsNotConstructed)
}

func (c AddTierCommand) ShopID() kernel.UUID {
	return c.shopID
}

func (c AddTierCommand) MinWeight() decimal.Decimal {
	return c.minWeight
}

func (c AddTierCommand) MaxWeight() decimal.Decimal {
	return c.maxWeight
}

func (c AddTierCommand) PricePerKilo() decimal.Decimal {
	return c.pricePerKilo
}
