package notification_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPending(t *testing.T) *notification.Notification {
	t.Helper()
	orderID := kernel.NewUUID()
	n, err := notification.NewNotification(kernel.NewUUID(), kernel.NewUUID(),
		"The shop set the price per kilo to ₱50 for your order.", "Suds & Co", &orderID, time.Now())
	require.NoError(t, err)
	return n
}

func TestNewNotification(t *testing.T) {
	t.Run("should start pending and unread", func(t *testing.T) {
		n := newPending(t)

		require.NoError(t, n.Validate())
		assert.Equal(t, notification.Pending, n.Status())
		assert.False(t, n.IsRead())
		assert.Equal(t, "Suds & Co", n.FromName())
		assert.NotNil(t, n.LinkedOrderID())
	})

	t.Run("should allow a notification without a linked order", func(t *testing.T) {
		n, err := notification.NewNotification(kernel.NewUUID(), kernel.NewUUID(), "Welcome", "", nil, time.Now())

		require.NoError(t, err)
		assert.Nil(t, n.LinkedOrderID())
	})

	t.Run("should require recipient and message", func(t *testing.T) {
		n, err := notification.NewNotification(kernel.NewUUID(), kernel.UUID{}, "  ", "", nil, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, n)
		assert.Contains(t, err.Error(), "recipient_id")
		assert.Contains(t, err.Error(), "message")
	})
}

func TestNotification_Accept(t *testing.T) {
	t.Run("should accept once and then be a no-op", func(t *testing.T) {
		n := newPending(t)

		changed, err := n.Accept()
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, notification.Accepted, n.Status())
		assert.True(t, n.IsRead())

		changed, err = n.Accept()
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, notification.Accepted, n.Status())
	})

	t.Run("should conflict after a decline", func(t *testing.T) {
		n := newPending(t)
		_, err := n.Decline()
		require.NoError(t, err)

		changed, err := n.Accept()

		require.ErrorIs(t, err, errs.ErrConflict)
		require.ErrorIs(t, err, notification.ErrAlreadyAnswered)
		assert.False(t, changed)
		assert.Equal(t, notification.Cancelled, n.Status())
	})
}

func TestNotification_Decline(t *testing.T) {
	n := newPending(t)

	changed, err := n.Decline()
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = n.Decline()
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = n.Accept()
	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestNotification_MarkRead(t *testing.T) {
	n := newPending(t)

	assert.True(t, n.MarkRead())
	assert.False(t, n.MarkRead())
	assert.Equal(t, notification.Pending, n.Status())
}

func TestRestoreNotification(t *testing.T) {
	n, err := notification.RestoreNotification(kernel.NewUUID(), kernel.NewUUID(), "hi", "", nil,
		notification.Accepted, true, time.Now())
	require.NoError(t, err)
	assert.Equal(t, notification.Accepted, n.Status())

	_, err = notification.RestoreNotification(kernel.NewUUID(), kernel.NewUUID(), "hi", "", nil,
		notification.Unknown, false, time.Now())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	s, err := notification.ParseStatus("Cancelled")
	require.NoError(t, err)
	assert.Equal(t, notification.Cancelled, s)
}
