package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrSetPriceCommandIsNotConstructed = errors.New(
		"SetPriceCommand must be created via NewSetPriceCommand constructor",
	)
)

// SetPriceCommand records a shop's per-kilo quote for a Pending order.
type SetPriceCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	pricePerKilo decimal.Decimal

	guard guard.ConstructorGuard
}

// NewSetPriceCommand requires a valid order id and a positive price.
func NewSetPriceCommand(orderID kernel.UUID, pricePerKilo decimal.Decimal) (SetPriceCommand, error) {
	cmd := SetPriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		kernel.RequirePositive("price_per_kilo", pricePerKilo),
	); err != nil {
		return SetPriceCommand{}, err
	}

	cmd.orderID = orderID
	cmd.pricePerKilo = pricePerKilo
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetPriceCommand) Validate() error {
	return c.guard.Validate(ErrSetPriceCommandIsNotConstructed)
}

func (c SetPriceCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SetPriceCommand) PricePerKilo() decimal.Decimal {
	return c.pricePerKilo
}
