// Package queries contains read operations for retrieving system state.
// Queries read the tables directly with SQL and return read models shaped
// for the HTTP layer; they never lock rows or go through a unit of work.
package queries

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ServiceLineView is one service of an order.
type ServiceLineView struct {
	Name  string
	Price decimal.Decimal
}

// ItemLineView is one item line of an order.
type ItemLineView struct {
	Name     string
	Quantity int
}

// OrderView is the read model of an order with its cart lines.
type OrderView struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	ShopID          kernel.UUID
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	Services        []ServiceLineView
	Items           []ItemLineView
	Weight          *decimal.Decimal
	Subtotal        decimal.Decimal
	DeliveryFee     decimal.Decimal
	VoucherDiscount decimal.Decimal
	TotalAmount     decimal.Decimal
	PricePerKilo    *decimal.Decimal
	DeliveryType    string
	Zone            string
	Street          string
	Barangay        string
	Building        string
	ScheduledDate   string
	ScheduledTime   string
	PaymentMethod   string
	Notes           string
	Status          order.Status
	CreatedAt       time.Time
}

const orderColumns = `
	SELECT
		id, customer_id, shop_id,
		customer_name, customer_email, customer_phone,
		weight, subtotal, delivery_fee, voucher_discount, total_amount, price_per_kilo,
		delivery_type, zone, street, barangay, building,
		scheduled_date, scheduled_time, payment_method, notes,
		status, created_at
	FROM orders
`

// loadOrders runs orderColumns with the given filter and attaches the cart
// lines of every order. Rows keep the order of the filter's ORDER BY.
func loadOrders(ctx context.Context, db *gorm.DB, filter string, args ...any) ([]OrderView, error) {
	rows, err := db.WithContext(ctx).Raw(orderColumns+filter, args...).Rows()
	if err != nil {
		return nil, errs.NewPersistenceError("list orders", err)
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var (
			v                      OrderView
			id, customerID, shopID uuid.UUID
			weight, ppk            decimal.NullDecimal
			status                 int
		)
		err = rows.Scan(
			&id, &customerID, &shopID,
			&v.CustomerName, &v.CustomerEmail, &v.CustomerPhone,
			&weight, &v.Subtotal, &v.DeliveryFee, &v.VoucherDiscount, &v.TotalAmount, &ppk,
			&v.DeliveryType, &v.Zone, &v.Street, &v.Barangay, &v.Building,
			&v.ScheduledDate, &v.ScheduledTime, &v.PaymentMethod, &v.Notes,
			&status, &v.CreatedAt,
		)
		if err != nil {
			return nil, errs.NewPersistenceError("scan order", err)
		}

		if v.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if v.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if v.ShopID, err = kernel.UUIDFromBytes(shopID[:]); err != nil {
			return nil, err
		}
		if weight.Valid {
			v.Weight = &weight.Decimal
		}
		if ppk.Valid {
			v.PricePerKilo = &ppk.Decimal
		}
		v.Status = order.Status(status)
		v.Services = make([]ServiceLineView, 0)
		v.Items = make([]ItemLineView, 0)

		views = append(views, v)
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, errs.NewPersistenceError("list orders", err)
	}

	if len(ids) == 0 {
		return views, nil
	}
	if err = attachLines(ctx, db, ids, views); err != nil {
		return nil, err
	}
	return views, nil
}

func attachLines(ctx context.Context, db *gorm.DB, ids []uuid.UUID, views []OrderView) error {
	index := make(map[uuid.UUID]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	services, err := db.WithContext(ctx).Raw(`
		SELECT order_id, name, price
		FROM order_services
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, ids).Rows()
	if err != nil {
		return errs.NewPersistenceError("list order services", err)
	}
	defer services.Close()

	for services.Next() {
		var (
			orderID uuid.UUID
			line    ServiceLineView
		)
		if err = services.Scan(&orderID, &line.Name, &line.Price); err != nil {
			return errs.NewPersistenceError("scan order service", err)
		}
		i := index[orderID]
		views[i].Services = append(views[i].Services, line)
	}
	if err = services.Err(); err != nil {
		return errs.NewPersistenceError("list order services", err)
	}

	items, err := db.WithContext(ctx).Raw(`
		SELECT order_id, name, quantity
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, ids).Rows()
	if err != nil {
		return errs.NewPersistenceError("list order items", err)
	}
	defer items.Close()

	for items.Next() {
		var (
			orderID uuid.UUID
			line    ItemLineView
		)
		if err = items.Scan(&orderID, &line.Name, &line.Quantity); err != nil {
			return errs.NewPersistenceError("scan order item", err)
		}
		i := index[orderID]
		views[i].Items = append(views[i].Items, line)
	}
	if err = items.Err(); err != nil {
		return errs.NewPersistenceError("list order items", err)
	}
	return nil
}
