package http

import (
	"time"

	"laundry/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

// Error is the body of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type ServiceLine struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type ItemLine struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// NewOrder is the body of POST /api/v1/customers/:customerId/orders. Money
// and weight accept JSON numbers or decimal strings.
type NewOrder struct {
	ShopID          string          `json:"shop_id"`
	Services        []ServiceLine   `json:"services"`
	Items           []ItemLine      `json:"items"`
	KiloAmount      decimal.Decimal `json:"kilo_amount"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee"`
	VoucherDiscount decimal.Decimal `json:"voucher_discount"`
	DeliveryType    string          `json:"delivery_type"`
	Zone            string          `json:"zone"`
	Street          string          `json:"street"`
	Barangay        string          `json:"barangay"`
	Building        string          `json:"building"`
	ScheduledDate   string          `json:"scheduled_date"`
	ScheduledTime   string          `json:"scheduled_time"`
	PaymentMethod   string          `json:"payment_method"`
	Notes           string          `json:"notes"`
}

type Created struct {
	ID string `json:"id"`
}

type SetPrice struct {
	PricePerKilo decimal.Decimal `json:"price_per_kilo"`
}

type UpdateStatus struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type CancelOrder struct {
	Reason string `json:"reason"`
	Notes  string `json:"notes"`
}

// OrderStatus is returned by every status-changing order operation.
type OrderStatus struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
}

type Order struct {
	TransactionID   string           `json:"transaction_id"`
	CustomerID      string           `json:"customer_id"`
	ShopID          string           `json:"shop_id"`
	CustomerName    string           `json:"customer_name"`
	CustomerEmail   string           `json:"customer_email"`
	CustomerPhone   string           `json:"customer_phone"`
	Services        []ServiceLine    `json:"services"`
	Items           []ItemLine       `json:"items"`
	KiloAmount      *decimal.Decimal `json:"kilo_amount"`
	PricePerKilo    *decimal.Decimal `json:"price_per_kilo"`
	Subtotal        decimal.Decimal  `json:"subtotal"`
	DeliveryFee     decimal.Decimal  `json:"delivery_fee"`
	VoucherDiscount decimal.Decimal  `json:"voucher_discount"`
	TotalAmount     decimal.Decimal  `json:"total_amount"`
	DeliveryType    string           `json:"delivery_type"`
	Zone            string           `json:"zone"`
	Street          string           `json:"street"`
	Barangay        string           `json:"barangay"`
	Building        string           `json:"building"`
	ScheduledDate   string           `json:"scheduled_date"`
	ScheduledTime   string           `json:"scheduled_time"`
	PaymentMethod   string           `json:"payment_method"`
	Notes           string           `json:"notes"`
	Status          string           `json:"status"`
	CreatedAt       time.Time        `json:"created_at"`
}

type NewTier struct {
	MinKilo      decimal.Decimal `json:"min_kilo"`
	MaxKilo      decimal.Decimal `json:"max_kilo"`
	PricePerKilo decimal.Decimal `json:"price_per_kilo"`
}

type Tier struct {
	ID           string          `json:"id"`
	ShopID       string          `json:"shop_id"`
	MinKilo      decimal.Decimal `json:"min_kilo"`
	MaxKilo      decimal.Decimal `json:"max_kilo"`
	PricePerKilo decimal.Decimal `json:"price_per_kilo"`
}

type ServicePrice struct {
	ServiceName string          `json:"service_name"`
	Price       decimal.Decimal `json:"price"`
}

type NewNotification struct {
	RecipientID         string  `json:"recipient_id"`
	Message             string  `json:"message"`
	FromName            string  `json:"from_name"`
	LinkedTransactionID *string `json:"linked_transaction_id"`
}

type Notification struct {
	ID                  string    `json:"id"`
	RecipientID         string    `json:"recipient_id"`
	Message             string    `json:"message"`
	FromName            string    `json:"from_name"`
	LinkedTransactionID *string   `json:"linked_transaction_id"`
	Status              string    `json:"status"`
	IsRead              bool      `json:"is_read"`
	CreatedAt           time.Time `json:"created_at"`
}

type Answer struct {
	Changed bool         `json:"changed"`
	Order   *OrderStatus `json:"order,omitempty"`
}

func toOrder(v queries.OrderView) Order {
	services := make([]ServiceLine, len(v.Services))
	for i, s := range v.Services {
		services[i] = ServiceLine{Name: s.Name, Price: s.Price}
	}
	items := make([]ItemLine, len(v.Items))
	for i, it := range v.Items {
		items[i] = ItemLine{Name: it.Name, Quantity: it.Quantity}
	}

	return Order{
		TransactionID:   v.ID.String(),
		CustomerID:      v.CustomerID.String(),
		ShopID:          v.ShopID.String(),
		CustomerName:    v.CustomerName,
		CustomerEmail:   v.CustomerEmail,
		CustomerPhone:   v.CustomerPhone,
		Services:        services,
		Items:           items,
		KiloAmount:      v.Weight,
		PricePerKilo:    v.PricePerKilo,
		Subtotal:        v.Subtotal,
		DeliveryFee:     v.DeliveryFee,
		VoucherDiscount: v.VoucherDiscount,
		TotalAmount:     v.TotalAmount,
		DeliveryType:    v.DeliveryType,
		Zone:            v.Zone,
		Street:          v.Street,
		Barangay:        v.Barangay,
		Building:        v.Building,
		ScheduledDate:   v.ScheduledDate,
		ScheduledTime:   v.ScheduledTime,
		PaymentMethod:   v.PaymentMethod,
		Notes:           v.Notes,
		Status:          v.Status.String(),
		CreatedAt:       v.CreatedAt,
	}
}

func toOrders(views []queries.OrderView) []Order {
	out := make([]Order, len(views))
	for i, v := range views {
		out[i] = toOrder(v)
	}
	return out
}

func toTier(v queries.TierView) Tier {
	return Tier{
		ID:           v.ID.String(),
		ShopID:       v.ShopID.String(),
		MinKilo:      v.MinWeight,
		MaxKilo:      v.MaxWeight,
		PricePerKilo: v.PricePerKilo,
	}
}

func toNotification(v queries.NotificationView) Notification {
	n := Notification{
		ID:          v.ID.String(),
		RecipientID: v.RecipientID.String(),
		Message:     v.Message,
		FromName:    v.FromName,
		Status:      v.Status.String(),
		IsRead:      v.IsRead,
		CreatedAt:   v.CreatedAt,
	}
	if v.LinkedOrderID != nil {
		linked := v.LinkedOrderID.String()
		n.LinkedTransactionID = &linked
	}
	return n
}
