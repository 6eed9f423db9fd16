// Package ports defines the contracts between the laundry core and its
// adapters: repositories bound to a unit of work, read-only directories owned
// by the account and catalog services, and the real-time broadcaster.
package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted.
type OrderRepository interface {
	// Add persists a new order together with its service and item lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, notes, price per kilo and amounts of an
	// existing order. Cart lines are immutable after placement.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns errs.ObjectNotFoundError when it does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row until the
	// surrounding transaction ends, so concurrent transitions serialize.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
