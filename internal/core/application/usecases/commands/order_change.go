package commands

import (
	"context"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
)

// OrderChange identifies the parties of an order whose status changed.
type OrderChange struct {
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	ShopID     kernel.UUID
	Status     order.Status
}

func changeOf(o *order.Order) OrderChange {
	return OrderChange{
		OrderID:    o.ID(),
		CustomerID: o.CustomerID(),
		ShopID:     o.ShopID(),
		Status:     o.Status(),
	}
}

func orderEvent(o *order.Order, now time.Time) ports.OrderEvent {
	return ports.OrderEvent{
		OrderID:     o.ID().String(),
		CustomerID:  o.CustomerID().String(),
		ShopID:      o.ShopID().String(),
		Status:      o.Status().String(),
		TotalAmount: o.TotalAmount().StringFixed(2),
		Notes:       o.Notes(),
		Timestamp:   now.UTC(),
	}
}

func placedEvent(o *order.Order, now time.Time) ports.OrderPlacedEvent {
	cart := o.Cart()
	services := make([]ports.ServiceLinePayload, 0, len(cart.Services()))
	for _, line := range cart.Services() {
		services = append(services, ports.ServiceLinePayload{Name: line.Name, Price: line.Price.StringFixed(2)})
	}
	items := make([]ports.ItemLinePayload, 0, len(cart.Items()))
	for _, line := range cart.Items() {
		items = append(items, ports.ItemLinePayload{Name: line.Name, Quantity: line.Quantity})
	}

	var kilos *string
	if o.IsWeightPriced() {
		w := o.Weight().StringFixed(3)
		kilos = &w
	}

	customer, delivery, schedule := o.Customer(), o.Delivery(), o.Schedule()
	return ports.OrderPlacedEvent{
		OrderID:         o.ID().String(),
		CustomerID:      o.CustomerID().String(),
		ShopID:          o.ShopID().String(),
		CustomerName:    customer.Name,
		CustomerEmail:   customer.Email,
		CustomerPhone:   customer.Phone,
		ServiceName:     strings.Join(cart.ServiceNames(), ", "),
		Services:        services,
		Items:           items,
		KiloAmount:      kilos,
		Subtotal:        o.Subtotal().StringFixed(2),
		DeliveryFee:     o.DeliveryFee().StringFixed(2),
		VoucherDiscount: o.VoucherDiscount().StringFixed(2),
		TotalAmount:     o.TotalAmount().StringFixed(2),
		DeliveryType:    delivery.Type,
		Zone:            delivery.Zone,
		Street:          delivery.Street,
		Barangay:        delivery.Barangay,
		Building:        delivery.Building,
		ScheduledDate:   schedule.Date,
		ScheduledTime:   schedule.Time,
		PaymentMethod:   o.PaymentMethod(),
		Notes:           o.Notes(),
		Status:          o.Status().String(),
		CreatedAt:       o.CreatedAt(),
		Timestamp:       now.UTC(),
	}
}

// publishStatus sends status_update to both parties of a committed order.
func publishStatus(ctx context.Context, b ports.Broadcaster, o *order.Order) {
	event := orderEvent(o, time.Now())
	b.Broadcast(ctx, ports.ShopGroup(o.ShopID()), ports.EventStatusUpdate, event)
	b.Broadcast(ctx, ports.UserGroup(o.CustomerID()), ports.EventStatusUpdate, event)
}
