// Package orderrepo persists order aggregates in the orders, order_services
// and order_items tables.
package orderrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID              uuid.UUID           `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID           `gorm:"type:uuid;not null;index"`
	ShopID          uuid.UUID           `gorm:"type:uuid;not null;index:idx_orders_shop_status"`
	CustomerName    string              `gorm:"type:varchar(255)"`
	CustomerEmail   string              `gorm:"type:varchar(255)"`
	CustomerPhone   string              `gorm:"type:varchar(32)"`
	Weight          decimal.NullDecimal `gorm:"type:numeric(10,3)"`
	Subtotal        decimal.Decimal     `gorm:"type:numeric(12,2);not null"`
	DeliveryFee     decimal.Decimal     `gorm:"type:numeric(12,2);not null"`
	VoucherDiscount decimal.Decimal     `gorm:"type:numeric(12,2);not null"`
	TotalAmount     decimal.Decimal     `gorm:"type:numeric(12,2);not null"`
	PricePerKilo    decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	DeliveryType    string              `gorm:"type:varchar(32);not null"`
	Address         AddressDTO          `gorm:"embedded"`
	ScheduledDate   string              `gorm:"type:varchar(10)"`
	ScheduledTime   string              `gorm:"type:varchar(8)"`
	PaymentMethod   string              `gorm:"type:varchar(64);not null"`
	Notes           string              `gorm:"type:text"`
	Status          int                 `gorm:"type:smallint;not null;index:idx_orders_shop_status"`
	CreatedAt       time.Time           `gorm:"not null;index"`
	Services        []ServiceLineDTO    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Items           []ItemLineDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO holds the delivery address columns of an order.
type AddressDTO struct {
	Zone     string `gorm:"type:varchar(128)"`
	Street   string `gorm:"type:varchar(255)"`
	Barangay string `gorm:"type:varchar(128)"`
	Building string `gorm:"type:varchar(255)"`
}

// ServiceLineDTO is one service of an order, kept in cart order by Position.
type ServiceLineDTO struct {
	OrderID  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position int             `gorm:"primaryKey"`
	Name     string          `gorm:"type:varchar(255);not null"`
	Price    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (ServiceLineDTO) TableName() string {
	return "order_services"
}

// ItemLineDTO is one item line of an order, kept in cart order by Position.
type ItemLineDTO struct {
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position int       `gorm:"primaryKey"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Quantity int       `gorm:"not null"`
}

func (ItemLineDTO) TableName() string {
	return "order_items"
}

func nullable(d decimal.Decimal, valid bool) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: valid}
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	id := o.ID().Bytes()

	services := make([]ServiceLineDTO, 0, len(o.Cart().Services()))
	for i, s := range o.Cart().Services() {
		services = append(services, ServiceLineDTO{OrderID: id, Position: i, Name: s.Name, Price: s.Price})
	}
	items := make([]ItemLineDTO, 0, len(o.Cart().Items()))
	for i, it := range o.Cart().Items() {
		items = append(items, ItemLineDTO{OrderID: id, Position: i, Name: it.Name, Quantity: it.Quantity})
	}

	var ppk decimal.NullDecimal
	if p := o.PricePerKilo(); p != nil {
		ppk = nullable(*p, true)
	}

	return OrderDTO{
		ID:              id,
		CustomerID:      o.CustomerID().Bytes(),
		ShopID:          o.ShopID().Bytes(),
		CustomerName:    o.Customer().Name,
		CustomerEmail:   o.Customer().Email,
		CustomerPhone:   o.Customer().Phone,
		Weight:          nullable(o.Weight(), o.IsWeightPriced()),
		Subtotal:        o.Subtotal(),
		DeliveryFee:     o.DeliveryFee(),
		VoucherDiscount: o.VoucherDiscount(),
		TotalAmount:     o.TotalAmount(),
		PricePerKilo:    ppk,
		DeliveryType:    o.Delivery().Type,
		Address: AddressDTO{
			Zone:     o.Delivery().Zone,
			Street:   o.Delivery().Street,
			Barangay: o.Delivery().Barangay,
			Building: o.Delivery().Building,
		},
		ScheduledDate: o.Schedule().Date,
		ScheduledTime: o.Schedule().Time,
		PaymentMethod: o.PaymentMethod(),
		Notes:         o.Notes(),
		Status:        int(o.Status()),
		CreatedAt:     o.CreatedAt(),
		Services:      services,
		Items:         items,
	}
}

// toDomain rebuilds an order aggregate from its rows. Services and Items
// must be loaded ordered by Position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}

	services := make([]order.ServiceLine, 0, len(dto.Services))
	for _, s := range dto.Services {
		services = append(services, order.ServiceLine{Name: s.Name, Price: s.Price})
	}
	items := make([]order.ItemLine, 0, len(dto.Items))
	for _, it := range dto.Items {
		items = append(items, order.ItemLine{Name: it.Name, Quantity: it.Quantity})
	}
	cart, err := order.NewCart(services, items)
	if err != nil {
		return nil, err
	}

	var ppk *decimal.Decimal
	if dto.PricePerKilo.Valid {
		p := dto.PricePerKilo.Decimal
		ppk = &p
	}

	weight := decimal.Zero
	if dto.Weight.Valid {
		weight = dto.Weight.Decimal
	}

	return order.RestoreOrder(id, order.Placement{
		CustomerID: customerID,
		ShopID:     shopID,
		Customer: order.Customer{
			Name:  dto.CustomerName,
			Email: dto.CustomerEmail,
			Phone: dto.CustomerPhone,
		},
		Cart:   cart,
		Weight: weight,
		Amounts: order.Amounts{
			Subtotal:        dto.Subtotal,
			DeliveryFee:     dto.DeliveryFee,
			VoucherDiscount: dto.VoucherDiscount,
		},
		Delivery: order.Delivery{
			Type:     dto.DeliveryType,
			Zone:     dto.Address.Zone,
			Street:   dto.Address.Street,
			Barangay: dto.Address.Barangay,
			Building: dto.Address.Building,
		},
		Schedule:      order.Schedule{Date: dto.ScheduledDate, Time: dto.ScheduledTime},
		PaymentMethod: dto.PaymentMethod,
		Notes:         dto.Notes,
	}, order.State{
		Status:       order.Status(dto.Status),
		PricePerKilo: ppk,
		Notes:        dto.Notes,
		CreatedAt:    dto.CreatedAt,
	})
}

// Models lists the tables owned by this package, parents first.
func Models() []any {
	return []any{&OrderDTO{}, &ServiceLineDTO{}, &ItemLineDTO{}}
}
