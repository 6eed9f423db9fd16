package kernel_test

import (
	"testing"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireNonNegative(t *testing.T) {
	require.NoError(t, kernel.RequireNonNegative("delivery_fee", decimal.Zero))
	require.NoError(t, kernel.RequireNonNegative("delivery_fee", decimal.NewFromInt(30)))

	err := kernel.RequireNonNegative("delivery_fee", decimal.NewFromInt(-1))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "delivery_fee")
	assert.Contains(t, err.Error(), "-1 is negative")
}

func TestRequirePositive(t *testing.T) {
	require.NoError(t, kernel.RequirePositive("price_per_kilo", decimal.RequireFromString("0.01")))

	err := kernel.RequirePositive("price_per_kilo", decimal.Zero)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "0 is not greater than 0")
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "12.35", kernel.Money(decimal.RequireFromString("12.345")).StringFixed(2))
	assert.True(t, kernel.Money(decimal.NewFromInt(210)).Equal(decimal.NewFromInt(210)))
}

func TestWeight(t *testing.T) {
	assert.Equal(t, "10.000", kernel.Weight(decimal.RequireFromString("10.0004")).StringFixed(3))
	assert.Equal(t, "5.000", kernel.Weight(decimal.RequireFromString("4.9996")).StringFixed(3))
	assert.True(t, kernel.Weight(decimal.RequireFromString("0.0004")).IsZero())
}
