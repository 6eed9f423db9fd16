package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
)

// GroupKey names a real-time subscription group.
type GroupKey string

// ShopGroup is the group of connections watching a shop's orders.
func ShopGroup(shopID kernel.UUID) GroupKey {
	return GroupKey("shop_" + shopID.String())
}

// UserGroup is the group of connections of one customer.
func UserGroup(customerID kernel.UUID) GroupKey {
	return GroupKey("user_" + customerID.String())
}

// Event names pushed to subscribers.
const (
	EventNewTransaction    = "new_transaction"
	EventTransactionUpdate = "transaction_update"
	EventStatusUpdate      = "status_update"
)

// ServiceLinePayload is one service of a placed order.
type ServiceLinePayload struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// ItemLinePayload is one item line of a placed order.
type ItemLinePayload struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// OrderPlacedEvent is the payload of new_transaction and
// transaction_update: the whole order as it was stored. KiloAmount is nil
// for orders not priced by weight.
type OrderPlacedEvent struct {
	OrderID         string               `json:"transaction_id"`
	CustomerID      string               `json:"customer_id"`
	ShopID          string               `json:"shop_id"`
	CustomerName    string               `json:"customer_name"`
	CustomerEmail   string               `json:"customer_email"`
	CustomerPhone   string               `json:"customer_phone"`
	ServiceName     string               `json:"service_name"`
	Services        []ServiceLinePayload `json:"services"`
	Items           []ItemLinePayload    `json:"items"`
	KiloAmount      *string              `json:"kilo_amount"`
	Subtotal        string               `json:"subtotal"`
	DeliveryFee     string               `json:"delivery_fee"`
	VoucherDiscount string               `json:"voucher_discount"`
	TotalAmount     string               `json:"total_amount"`
	DeliveryType    string               `json:"delivery_type"`
	Zone            string               `json:"zone"`
	Street          string               `json:"street"`
	Barangay        string               `json:"barangay"`
	Building        string               `json:"building"`
	ScheduledDate   string               `json:"scheduled_date"`
	ScheduledTime   string               `json:"scheduled_time"`
	PaymentMethod   string               `json:"payment_method"`
	Notes           string               `json:"notes"`
	Status          string               `json:"status"`
	CreatedAt       time.Time            `json:"created_at"`
	Timestamp       time.Time            `json:"timestamp"`
}

// OrderEvent is the payload of status_update.
type OrderEvent struct {
	OrderID     string    `json:"transaction_id"`
	CustomerID  string    `json:"customer_id"`
	ShopID      string    `json:"shop_id"`
	Status      string    `json:"status"`
	TotalAmount string    `json:"total_amount,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Broadcaster pushes events to subscription groups. Delivery is best-effort
// and at-most-once: implementations never block the caller on a slow
// subscriber and report failures through their own logging.
type Broadcaster interface {
	Broadcast(ctx context.Context, group GroupKey, event string, payload any)
}
