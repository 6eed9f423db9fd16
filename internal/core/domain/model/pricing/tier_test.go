package pricing_test

import (
	"testing"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tier(t *testing.T, shopID kernel.UUID, minWeight, maxWeight, price int64) *pricing.Tier {
	t.Helper()
	tr, err := pricing.NewTier(kernel.NewUUID(), shopID,
		decimal.NewFromInt(minWeight), decimal.NewFromInt(maxWeight), decimal.NewFromInt(price))
	require.NoError(t, err)
	return tr
}

func TestNewTier(t *testing.T) {
	shopID := kernel.NewUUID()

	t.Run("should build a valid tier", func(t *testing.T) {
		tr := tier(t, shopID, 0, 5, 50)

		require.NoError(t, tr.Validate())
		assert.True(t, tr.ShopID().IsEqual(shopID))
		assert.Equal(t, "[0, 5] @ 50", tr.String())
	})

	t.Run("should require min below max", func(t *testing.T) {
		for _, r := range [][2]int64{{5, 5}, {6, 5}} {
			_, err := pricing.NewTier(kernel.NewUUID(), shopID,
				decimal.NewFromInt(r[0]), decimal.NewFromInt(r[1]), decimal.NewFromInt(10))

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should reject a negative min and a non-positive price", func(t *testing.T) {
		_, err := pricing.NewTier(kernel.NewUUID(), shopID,
			decimal.NewFromInt(-1), decimal.NewFromInt(5), decimal.Zero)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "min_weight")
		assert.Contains(t, err.Error(), "price_per_kilo")
	})

	t.Run("should reject a zero value tier", func(t *testing.T) {
		require.ErrorIs(t, (&pricing.Tier{}).Validate(), pricing.ErrTierIsNotConstructed)
	})
}

func TestTier_Contains(t *testing.T) {
	tr := tier(t, kernel.NewUUID(), 5, 10, 45)

	assert.True(t, tr.Contains(decimal.NewFromInt(5)))
	assert.True(t, tr.Contains(decimal.RequireFromString("7.25")))
	assert.True(t, tr.Contains(decimal.NewFromInt(10)))
	assert.False(t, tr.Contains(decimal.RequireFromString("4.999")))
	assert.False(t, tr.Contains(decimal.RequireFromString("10.001")))
}

func TestTier_Overlaps(t *testing.T) {
	shopID := kernel.NewUUID()
	existing := tier(t, shopID, 0, 5, 50)

	tests := []struct {
		name     string
		min, max int64
		expected bool
	}{
		{"touching upper boundary", 5, 10, false},
		{"min inside", 4, 8, true},
		{"shares lower bound", 0, 3, true},
		{"fully inside", 1, 2, true},
		{"covers existing", 0, 20, true},
		{"identical", 0, 5, true},
		{"disjoint", 6, 9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := tier(t, shopID, tt.min, tt.max, 10)

			assert.Equal(t, tt.expected, existing.Overlaps(candidate))
			assert.Equal(t, tt.expected, candidate.Overlaps(existing))
		})
	}

	t.Run("touching lower boundary", func(t *testing.T) {
		upper := tier(t, shopID, 5, 10, 45)
		lower := tier(t, shopID, 2, 5, 60)

		assert.False(t, upper.Overlaps(lower))
	})
}

func TestTier_Price(t *testing.T) {
	tr := tier(t, kernel.NewUUID(), 0, 5, 50)

	assert.Equal(t, "162.50", tr.Price(decimal.RequireFromString("3.25")).StringFixed(2))
}
