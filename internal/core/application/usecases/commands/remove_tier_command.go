package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrRemoveTierCommandIsNotConstructed = errors.New(
		"RemoveTierCommand must be created via NewRemoveTierCommand constructor",
	)
)

// RemoveTierCommand deletes the tier spanning exactly [min, max].
type RemoveTierCommand struct { //nolint:recvcheck //using for validation
	shopID    kernel.UUID
	minWeight decimal.Decimal
	maxWeight decimal.Decimal

	guard guard.ConstructorGuard
}

// NewRemoveTierCommand requires a valid shop id.
func NewRemoveTierCommand(shopID kernel.UUID, minWeight, maxWeight decimal.Decimal) (RemoveTierCommand, error) {
	if err := shopID.Validate(); err != nil {
		return RemoveTierCommand{}, errs.NewValueIsRequiredErrorWithCause("shop_id", err)
	}

	return RemoveTierCommand{
		shopID:    shopID,
		minWeight: minWeight,
		maxWeight: maxWeight,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveTierCommand) Validate() error {
	return c.guard.Validate(ErrRemoveTierCommandIsNotConstructed)
}

func (c RemoveTierCommand) ShopID() kernel.UUID {
	return c.shopID
}

func (c RemoveTierCommand) MinWeight() decimal.Decimal {
	return c.minWeight
}

func (c RemoveTierCommand) MaxWeight() decimal.Decimal {
	return c.maxWeight
}
