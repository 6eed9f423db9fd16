package queries

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrListCustomerOrdersQueryIsNotConstructed = errors.New(
		"ListCustomerOrdersQuery must be created via NewListCustomerOrdersQuery constructor",
	)
)

// ListCustomerOrdersQuery lists the orders placed by a customer, newest first.
type ListCustomerOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListCustomerOrdersQuery(customerID kernel.UUID) (ListCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return ListCustomerOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("customer_id", err)
	}
	return ListCustomerOrdersQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerOrdersQueryIsNotConstructed)
}

func (q ListCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// ListCustomerOrdersQueryHandler reads a customer's orders.
type ListCustomerOrdersQueryHandler struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewListCustomerOrdersQueryHandler(db *gorm.DB, timeout time.Duration) ListCustomerOrdersQueryHandler {
	return ListCustomerOrdersQueryHandler{db: db, timeout: timeout}
}

func (h ListCustomerOrdersQueryHandler) Handle(ctx context.Context, query ListCustomerOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := bounded(ctx, h.timeout)
	defer cancel()
	return loadOrders(ctx, h.db,
		"WHERE customer_id = ? ORDER BY created_at DESC, id",
		query.CustomerID().Bytes())
}
