package order

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ServiceLine is one laundry service on the order (e.g. "Wash & Fold") with
// the price the shop charges for it.
type ServiceLine struct {
	Name  string
	Price decimal.Decimal
}

// ItemLine counts garments or household items handed over with the order.
type ItemLine struct {
	Name     string
	Quantity int
}

// Cart is the structured content of an order. It is decoded once at the
// transport boundary and never re-parsed.
type Cart struct {
	services []ServiceLine
	items    []ItemLine
}

// NewCart validates the lines and keeps their order. Item lines with a
// non-positive quantity are dropped.
func NewCart(services []ServiceLine, items []ItemLine) (Cart, error) {
	var errList []error
	cart := Cart{
		services: make([]ServiceLine, 0, len(services)),
		items:    make([]ItemLine, 0, len(items)),
	}

	for i, s := range services {
		if s.Name == "" {
			errList = append(errList, errs.NewValueIsRequiredError(fmt.Sprintf("services[%d].name", i)))
			continue
		}
		if err := kernel.RequireNonNegative(fmt.Sprintf("services[%d].price", i), s.Price); err != nil {
			errList = append(errList, err)
			continue
		}
		cart.services = append(cart.services, ServiceLine{Name: s.Name, Price: kernel.Money(s.Price)})
	}

	for i, it := range items {
		if it.Name == "" {
			errList = append(errList, errs.NewValueIsRequiredError(fmt.Sprintf("items[%d].name", i)))
			continue
		}
		if it.Quantity <= 0 {
			continue
		}
		cart.items = append(cart.items, it)
	}

	if err := errors.Join(errList...); err != nil {
		return Cart{}, err
	}
	return cart, nil
}

// Services returns a copy of the service lines.
func (c Cart) Services() []ServiceLine {
	out := make([]ServiceLine, len(c.services))
	copy(out, c.services)
	return out
}

// Items returns a copy of the item lines.
func (c Cart) Items() []ItemLine {
	out := make([]ItemLine, len(c.items))
	copy(out, c.items)
	return out
}

// ServiceNames lists the service names in cart order.
func (c Cart) ServiceNames() []string {
	names := make([]string, 0, len(c.services))
	for _, s := range c.services {
		names = append(names, s.Name)
	}
	return names
}

// IsEmpty reports whether the cart has neither services nor items.
func (c Cart) IsEmpty() bool {
	return len(c.services) == 0 && len(c.items) == 0
}
