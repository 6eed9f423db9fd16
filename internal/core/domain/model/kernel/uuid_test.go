package kernel_test

import (
	"testing"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create a valid unique UUID", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		require.NoError(t, id1.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id1.String())
		assert.False(t, id1.IsEqual(id2))
	})
}

func TestUUIDFromString(t *testing.T) {
	validUUID := "550e8400-e29b-41d4-a716-446655440000"

	t.Run("should accept supported textual forms", func(t *testing.T) {
		for _, input := range []string{
			validUUID,
			"{550e8400-e29b-41d4-a716-446655440000}",
			"urn:uuid:550e8400-e29b-41d4-a716-446655440000",
			"550e8400e29b41d4a716446655440000",
		} {
			id, err := kernel.UUIDFromString(input)

			require.NoError(t, err, input)
			assert.Equal(t, validUUID, id.String())
		}
	})

	t.Run("should return error for invalid UUID format", func(t *testing.T) {
		for _, input := range []string{"", "not-a-uuid", "550e8400-e29b-41d4-a716", "zzze8400-e29b-41d4-a716-446655440000"} {
			_, err := kernel.UUIDFromString(input)

			require.Error(t, err, input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should create UUID from valid bytes", func(t *testing.T) {
		b := []byte{
			0x55, 0x0e, 0x84, 0x00, 0xe2, 0x9b, 0x41, 0xd4,
			0xa7, 0x16, 0x44, 0x66, 0x55, 0x44, 0x00, 0x00,
		}

		id, err := kernel.UUIDFromBytes(b)

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})

	t.Run("should reject short slices", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x55, 0x0e})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("should reject the nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestParseID(t *testing.T) {
	t.Run("should parse a valid id", func(t *testing.T) {
		want := kernel.NewUUID()

		got, err := kernel.ParseID("order_id", want.String())

		require.NoError(t, err)
		assert.True(t, want.IsEqual(got))
	})

	t.Run("should report missing id as required", func(t *testing.T) {
		_, err := kernel.ParseID("order_id", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "order_id")
	})

	t.Run("should report malformed and nil ids as invalid", func(t *testing.T) {
		_, err := kernel.ParseID("shop_id", "42")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = kernel.ParseID("shop_id", uuid.Nil.String())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestUUID_Validate(t *testing.T) {
	var zero kernel.UUID

	assert.Equal(t, kernel.ErrUUIDIsNotConstructed, zero.Validate())
	assert.True(t, zero.IsEqual(kernel.UUID{}))
}

func TestUUID_BytesIsACopy(t *testing.T) {
	original := kernel.NewUUID()
	originalString := original.String()

	b := original.Bytes()
	for i := range b {
		b[i] = 0xFF
	}

	assert.Equal(t, originalString, original.String())
}
