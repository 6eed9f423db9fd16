package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Customer is the identity record of a registered customer.
type Customer struct {
	ID    kernel.UUID
	Name  string
	Email string
	Phone string
}

// Shop is the catalog record of a laundry shop.
type Shop struct {
	ID   kernel.UUID
	Name string
}

// CustomerDirectory reads customers owned by the account service.
// A miss is errs.ObjectNotFoundError; a store failure is errs.PersistenceError.
type CustomerDirectory interface {
	Customer(ctx context.Context, id kernel.UUID) (Customer, error)
}

// ShopDirectory reads shops owned by the catalog service.
type ShopDirectory interface {
	Shop(ctx context.Context, id kernel.UUID) (Shop, error)
}

// CatalogPrices reads the fixed price of a shop's named service.
type CatalogPrices interface {
	ServicePrice(ctx context.Context, shopID kernel.UUID, serviceName string) (decimal.Decimal, error)
}
