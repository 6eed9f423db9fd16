package queries

import (
	"context"
	"errors"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetServicePriceQueryIsNotConstructed = errors.New(
		"GetServicePriceQuery must be created via NewGetServicePriceQuery constructor",
	)
)

// GetServicePriceQuery reads the catalog price of a shop's named service.
type GetServicePriceQuery struct {
	shopID      kernel.UUID
	serviceName string

	guard guard.ConstructorGuard
}

func NewGetServicePriceQuery(shopID kernel.UUID, serviceName string) (GetServicePriceQuery, error) {
	serviceName = strings.TrimSpace(serviceName)
	var nameErr error
	if serviceName == "" {
		nameErr = errs.NewValueIsRequiredError("service_name")
	}
	if err := errors.Join(shopID.Validate(), nameErr); err != nil {
		return GetServicePriceQuery{}, err
	}
	return GetServicePriceQuery{shopID: shopID, serviceName: serviceName, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetServicePriceQuery) Validate() error {
	return q.guard.Validate(ErrGetServicePriceQueryIsNotConstructed)
}

// GetServicePriceQueryHandler delegates to the catalog collaborator.
type GetServicePriceQueryHandler struct {
	prices ports.CatalogPrices
}

func NewGetServicePriceQueryHandler(prices ports.CatalogPrices) GetServicePriceQueryHandler {
	return GetServicePriceQueryHandler{prices: prices}
}

// Handle returns the price or errs.ObjectNotFoundError for an unknown service.
func (h GetServicePriceQueryHandler) Handle(ctx context.Context, query GetServicePriceQuery) (decimal.Decimal, error) {
	if err := query.Validate(); err != nil {
		return decimal.Zero, err
	}
	return h.prices.ServicePrice(ctx, query.shopID, query.serviceName)
}
