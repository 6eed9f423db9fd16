package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ListShopOrdersQueryHandler reads a shop's orders.
type ListShopOrdersQueryHandler struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewListShopOrdersQueryHandler(db *gorm.DB, timeout time.Duration) ListShopOrdersQueryHandler {
	return ListShopOrdersQueryHandler{db: db, timeout: timeout}
}

// Handle returns the shop's orders ordered by created_at descending.
func (h ListShopOrdersQueryHandler) Handle(ctx context.Context, query ListShopOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := bounded(ctx, h.timeout)
	defer cancel()

	if status := query.Status(); status != nil {
		return loadOrders(ctx, h.db,
			"WHERE shop_id = ? AND status = ? ORDER BY created_at DESC, id",
			query.ShopID().Bytes(), int(*status))
	}
	return loadOrders(ctx, h.db,
		"WHERE shop_id = ? ORDER BY created_at DESC, id",
		query.ShopID().Bytes())
}
