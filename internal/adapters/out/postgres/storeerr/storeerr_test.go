package storeerr_test

import (
	"context"
	"errors"
	"testing"

	"laundry/internal/adapters/out/postgres/storeerr"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestWrap(t *testing.T) {
	assert.NoError(t, storeerr.Wrap("insert order", nil))

	err := storeerr.Wrap("insert order", context.DeadlineExceeded)
	require.ErrorIs(t, err, errs.ErrPersistence)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "insert order")

	domain := errs.NewValueIsRequiredError("cart")
	assert.Same(t, domain, storeerr.Wrap("insert order", domain))
}

func TestNotFound(t *testing.T) {
	err := storeerr.NotFound("load order", "order", "42", gorm.ErrRecordNotFound)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Contains(t, err.Error(), "order 42")

	err = storeerr.NotFound("load order", "order", "42", errors.New("broken pipe"))
	require.ErrorIs(t, err, errs.ErrPersistence)
}
