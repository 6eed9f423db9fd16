package kernel

import (
	"fmt"

	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Monetary values and weights are fixed-point decimals. Money is rounded to
// centavos, weights to grams.
const (
	MoneyPlaces  = 2
	WeightPlaces = 3
)

// RequireNonNegative validates an amount or weight that may be zero.
func RequireNonNegative(paramName string, value decimal.Decimal) error {
	if value.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%s is negative", value))
	}
	return nil
}

// RequirePositive validates an amount or weight that must be greater than zero.
func RequirePositive(paramName string, value decimal.Decimal) error {
	if !value.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%s is not greater than 0", value))
	}
	return nil
}

// Weight rounds a weight in kilos to WeightPlaces.
func Weight(value decimal.Decimal) decimal.Decimal {
	return value.Round(WeightPlaces)
}

// Money rounds a monetary amount to MoneyPlaces.
func Money(value decimal.Decimal) decimal.Decimal {
	return value.Round(MoneyPlaces)
}
