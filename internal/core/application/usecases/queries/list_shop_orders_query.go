package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrListShopOrdersQueryIsNotConstructed = errors.New(
		"ListShopOrdersQuery must be created via NewListShopOrdersQuery constructor",
	)
)

// ListShopOrdersQuery lists the orders of a shop, newest first, optionally
// restricted to one status.
//
// Example:
//
//	pending := order.Pending
//	query, err := NewListShopOrdersQuery(shopID, &pending)
//	orders, err := handler.Handle(ctx, query)
type ListShopOrdersQuery struct {
	shopID kernel.UUID
	status *order.Status

	guard guard.ConstructorGuard
}

// NewListShopOrdersQuery creates the query. A nil status lists every order.
func NewListShopOrdersQuery(shopID kernel.UUID, status *order.Status) (ListShopOrdersQuery, error) {
	if err := shopID.Validate(); err != nil {
		return ListShopOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("shop_id", err)
	}
	q := ListShopOrdersQuery{shopID: shopID, guard: guard.NewConstructorGuard()}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListShopOrdersQuery{}, err
		}
		s := *status
		q.status = &s
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListShopOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListShopOrdersQueryIsNotConstructed)
}

func (q ListShopOrdersQuery) ShopID() kernel.UUID {
	return q.shopID
}

// Status returns the status filter, or nil.
func (q ListShopOrdersQuery) Status() *order.Status {
	return q.status
}
