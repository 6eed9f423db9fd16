// Package commands contains business operations that modify system state.
// Every handler validates its command, runs inside one unit of work, and
// pushes real-time events only after the commit succeeded.
package commands

import (
	"context"

	"laundry/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TierRepoFactory provides access to the tier repository within a transaction.
	TierRepoFactory interface {
		TierRepository() ports.TierRepository
	}

	// NotificationRepoFactory provides access to the notification repository
	// within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// TierUoW manages transactions for tier-only operations.
	TierUoW interface {
		TxManager
		TierRepoFactory
	}

	// TierUoWFactory creates new tier unit of work instances.
	TierUoWFactory interface {
		Create() TierUoW
	}

	// UoW manages transactions across orders, tiers and notifications.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	//   // ... mutate o, write a notification
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		TierRepoFactory
		NotificationRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
