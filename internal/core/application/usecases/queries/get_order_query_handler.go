package queries

import (
	"context"
	"time"

	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order.
type GetOrderQueryHandler struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewGetOrderQueryHandler(db *gorm.DB, timeout time.Duration) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, timeout: timeout}
}

// Handle returns the order or errs.ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	ctx, cancel := bounded(ctx, h.timeout)
	defer cancel()

	views, err := loadOrders(ctx, h.db, "WHERE id = ?", query.OrderID().Bytes())
	if err != nil {
		return OrderView{}, err
	}
	if len(views) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	return views[0], nil
}
