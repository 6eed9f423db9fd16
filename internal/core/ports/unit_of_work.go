package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Begin starts a
// transaction bounded by the store timeout; Rollback after Commit is a no-op.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// TierRepository returns a TierRepository bound to the current transaction.
	TierRepository() TierRepository

	// NotificationRepository returns a NotificationRepository bound to the
	// current transaction.
	NotificationRepository() NotificationRepository
}
