// Package postgres provides the GORM-based Unit of Work over the order, tier
// and notification repositories.
//
// Every transaction is bounded by the store timeout: Begin derives a
// deadline from the caller's context and sets the same statement and lock
// timeouts on the PostgreSQL session, so a stuck query or a lock wait fails
// with errs.PersistenceError instead of hanging the request.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, 5*time.Second)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	o, err := uow.OrderRepository().GetForUpdate(ctx, id)
//	// ... mutate o
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Rollback after Commit is a no-op, so the deferred Rollback is always safe.
// Each UnitOfWork instance serves one goroutine.
package postgres

import (
	"context"
	"fmt"
	"time"

	"laundry/internal/adapters/out/postgres/notificationrepo"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/storeerr"
	"laundry/internal/adapters/out/postgres/tierrepo"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewGormUnitOfWorkFactory creates a factory whose transactions last at most
// timeout. A non-positive timeout leaves transactions unbounded.
func NewGormUnitOfWorkFactory(db *gorm.DB, timeout time.Duration) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, timeout: timeout}
}

// Create produces a new UnitOfWork instance with its own transaction state
// and aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		timeout:           f.timeout,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	cancel            context.CancelFunc
	timeout           time.Duration
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling Begin again while a transaction is
// open does nothing.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	var (
		txCtx  context.Context
		cancel context.CancelFunc
	)
	if uow.timeout > 0 {
		txCtx, cancel = context.WithTimeout(ctx, uow.timeout)
	} else {
		txCtx, cancel = context.WithCancel(ctx)
	}

	tx := uow.db.WithContext(txCtx).Begin()
	if tx.Error != nil {
		cancel()
		return storeerr.Wrap("begin transaction", tx.Error)
	}

	if uow.timeout > 0 {
		ms := uow.timeout.Milliseconds()
		err := tx.Exec(fmt.Sprintf("SET LOCAL statement_timeout = %d", ms)).Error
		if err == nil {
			err = tx.Exec(fmt.Sprintf("SET LOCAL lock_timeout = %d", ms)).Error
		}
		if err != nil {
			tx.Rollback()
			cancel()
			return storeerr.Wrap("begin transaction", err)
		}
	}

	uow.tx = tx
	uow.cancel = cancel
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Commit finalizes the transaction. It returns gorm.ErrInvalidTransaction
// when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.close()
	return storeerr.Wrap("commit", err)
}

// Rollback discards the transaction. Without an open transaction, as after
// Commit, it does nothing.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.close()
	return storeerr.Wrap("rollback", err)
}

func (uow *GormUnitOfWork) close() {
	uow.tx = nil
	if uow.cancel != nil {
		uow.cancel()
		uow.cancel = nil
	}
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns an order repository bound to the open transaction,
// or to the plain connection when none is open.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// TierRepository returns a tier repository bound to the open transaction.
func (uow *GormUnitOfWork) TierRepository() ports.TierRepository {
	return tierrepo.NewGormTierRepository(uow.conn(), uow)
}

// NotificationRepository returns a notification repository bound to the open
// transaction.
func (uow *GormUnitOfWork) NotificationRepository() ports.NotificationRepository {
	return notificationrepo.NewGormNotificationRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after every successful Add or Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedIDs lists the identifiers of the aggregates written since Begin,
// in write order.
func (uow *GormUnitOfWork) TrackedIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		ids = append(ids, t.ID)
	}
	return ids
}

// Models lists every table written by the repositories of this package.
func Models() []any {
	models := orderrepo.Models()
	models = append(models, &tierrepo.TierDTO{}, &notificationrepo.NotificationDTO{})
	return models
}
