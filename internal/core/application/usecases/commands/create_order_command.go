package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// OrderDetails is the client-supplied content of a new order, already
// decoded from the wire format.
type OrderDetails struct {
	Cart          order.Cart
	Weight        decimal.Decimal
	Amounts       order.Amounts
	Delivery      order.Delivery
	Schedule      order.Schedule
	PaymentMethod string
	Notes         string
}

// CreateOrderCommand places a laundry order for a customer at a shop.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, shopID, OrderDetails{
//	    Cart:     cart,
//	    Weight:   decimal.NewFromInt(3),
//	    Amounts:  order.Amounts{Subtotal: decimal.NewFromInt(200), DeliveryFee: decimal.NewFromInt(30)},
//	    Delivery: order.Delivery{Type: "pickup"},
//	})
//	if err != nil {
//	    return err
//	}
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	shopID     kernel.UUID
	details    OrderDetails

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the parties, the weight and the cart.
// Amount checks happen when the order aggregate is built.
func NewCreateOrderCommand(customerID, shopID kernel.UUID, details OrderDetails) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParties(customerID, shopID),
		cmd.setDetails(details),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateOrderCommand) ShopID() kernel.UUID {
	return c.shopID
}

func (c CreateOrderCommand) Details() OrderDetails {
	return c.details
}

// IsWeightPriced reports whether a tier must cover the order's weight.
func (c CreateOrderCommand) IsWeightPriced() bool {
	return c.details.Weight.IsPositive()
}

func (c *CreateOrderCommand) setParties(customerID, shopID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer_id", err)
	}
	if err := shopID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shop_id", err)
	}
	c.customerID = customerID
	c.shopID = shopID
	return nil
}

func (c *CreateOrderCommand) setDetails(details OrderDetails) error {
	if err := kernel.RequireNonNegative("weight", details.Weight); err != nil {
		return err
	}
	if details.Cart.IsEmpty() {
		return errs.NewValueIsRequiredError("cart")
	}
	details.Weight = kernel.Weight(details.Weight)
	c.details = details
	return nil
}
