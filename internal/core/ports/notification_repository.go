package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notifications.
type NotificationRepository interface {
	Add(ctx context.Context, n *notification.Notification) error

	// Update persists status and read flag.
	Update(ctx context.Context, n *notification.Notification) error

	// GetForUpdate retrieves a notification and locks its row until the
	// surrounding transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*notification.Notification, error)
}
