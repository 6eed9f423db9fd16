package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultPaymentMethod is used when the customer does not choose one.
const DefaultPaymentMethod = "Cash on Delivery"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrAlreadyCancelled is returned when cancelling an order twice. It
	// matches errs.ErrConflict.
	ErrAlreadyCancelled = errors.New("order is already cancelled")
)

// Customer is the contact snapshot copied from the identity service when the
// order is placed. Later profile edits do not change it.
type Customer struct {
	Name  string
	Email string
	Phone string
}

// Delivery describes how the laundry is handed back and where.
type Delivery struct {
	Type     string
	Zone     string
	Street   string
	Barangay string
	Building string
}

// Schedule is the pickup slot requested by the customer, kept as entered
// ("2006-01-02" and "15:04" or "15:04:05").
type Schedule struct {
	Date string
	Time string
}

// Amounts are the client-supplied money fields of a new order. The total is
// always derived, never accepted from the client.
type Amounts struct {
	Subtotal        decimal.Decimal
	DeliveryFee     decimal.Decimal
	VoucherDiscount decimal.Decimal
}

// Placement gathers everything needed to place an order.
type Placement struct {
	CustomerID    kernel.UUID
	ShopID        kernel.UUID
	Customer      Customer
	Cart          Cart
	Weight        decimal.Decimal
	Amounts       Amounts
	Delivery      Delivery
	Schedule      Schedule
	PaymentMethod string
	Notes         string
}

// State is the mutable part of an order as stored by the persistence layer.
type State struct {
	Status       Status
	PricePerKilo *decimal.Decimal
	Notes        string
	CreatedAt    time.Time
}

// Order is the aggregate root of the laundry lifecycle ("transaction").
//
// Invariants:
//   - total == subtotal + delivery fee - voucher discount, never negative
//   - status changes only along the edges of Status
//   - the price per kilo is set at most once, while the order is Pending
type Order struct {
	id            kernel.UUID
	customerID    kernel.UUID
	shopID        kernel.UUID
	customer      Customer
	cart          Cart
	weight        decimal.Decimal
	subtotal      decimal.Decimal
	deliveryFee   decimal.Decimal
	discount      decimal.Decimal
	total         decimal.Decimal
	delivery      Delivery
	schedule      Schedule
	paymentMethod string
	notes         string
	status        Status
	pricePerKilo  *decimal.Decimal
	createdAt     time.Time

	isConstructed bool
}

// NewOrder places an order in Pending status. The total is computed from
// the amounts; a weight of zero means the order is not weight-priced.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), order.Placement{
//	    CustomerID: customerID,
//	    ShopID:     shopID,
//	    Cart:       cart,
//	    Amounts:    order.Amounts{Subtotal: decimal.NewFromInt(200), DeliveryFee: decimal.NewFromInt(30)},
//	    Delivery:   order.Delivery{Type: "pickup"},
//	}, time.Now())
func NewOrder(id kernel.UUID, p Placement, now time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setParties(p.CustomerID, p.ShopID),
		o.setCart(p.Cart),
		o.setWeight(p.Weight),
		o.setAmounts(p.Amounts),
		o.setDelivery(p.Delivery),
		o.setSchedule(p.Schedule),
	); err != nil {
		return nil, err
	}

	o.customer = p.Customer
	o.paymentMethod = strings.TrimSpace(p.PaymentMethod)
	if o.paymentMethod == "" {
		o.paymentMethod = DefaultPaymentMethod
	}
	o.notes = p.Notes

	if err := o.recalculate(); err != nil {
		return nil, err
	}
	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage. Amounts carry the
// stored subtotal, which already includes any per-kilo charge.
func RestoreOrder(id kernel.UUID, p Placement, s State) (*Order, error) {
	o, err := NewOrder(id, p, s.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err = s.Status.Validate(); err != nil {
		return nil, err
	}
	if s.PricePerKilo != nil {
		if err = kernel.RequirePositive("price_per_kilo", *s.PricePerKilo); err != nil {
			return nil, err
		}
		ppk := *s.PricePerKilo
		o.pricePerKilo = &ppk
	}
	o.status = s.Status
	o.notes = s.Notes
	return o, nil
}

// Validate ensures the Order instance was built through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// ShopID returns the shop serving the order.
func (o *Order) ShopID() kernel.UUID {
	return o.shopID
}

// Customer returns the contact snapshot taken at placement.
func (o *Order) Customer() Customer {
	return o.customer
}

func (o *Order) Cart() Cart {
	return o.cart
}

// Weight returns the laundry weight in kilograms, zero when not weight-priced.
func (o *Order) Weight() decimal.Decimal {
	return o.weight
}

func (o *Order) Subtotal() decimal.Decimal {
	return o.subtotal
}

func (o *Order) DeliveryFee() decimal.Decimal {
	return o.deliveryFee
}

func (o *Order) VoucherDiscount() decimal.Decimal {
	return o.discount
}

// TotalAmount returns subtotal + delivery fee - voucher discount.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.total
}

func (o *Order) Delivery() Delivery {
	return o.delivery
}

func (o *Order) Schedule() Schedule {
	return o.schedule
}

func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

func (o *Order) Notes() string {
	return o.notes
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsWeightPriced reports whether the order carries a weight to be charged per kilo.
func (o *Order) IsWeightPriced() bool {
	return o.weight.IsPositive()
}

// PricePerKilo returns the quoted price per kilo, or nil before a quote.
func (o *Order) PricePerKilo() *decimal.Decimal {
	if o.pricePerKilo == nil {
		return nil
	}
	ppk := *o.pricePerKilo
	return &ppk
}

// SetPricePerKilo records the shop's quote and moves the order to
// Processing. The subtotal grows by weight × price and the total is
// recomputed. Only a Pending order can be quoted.
func (o *Order) SetPricePerKilo(price decimal.Decimal) error {
	if err := kernel.RequirePositive("price_per_kilo", price); err != nil {
		return err
	}

	next, err := o.status.TransitionTo(Processing)
	if err != nil {
		return err
	}

	subtotal := o.subtotal
	if o.IsWeightPriced() {
		subtotal = kernel.Money(subtotal.Add(o.weight.Mul(price)))
	}
	total := kernel.Money(subtotal.Add(o.deliveryFee).Sub(o.discount))
	if total.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("total_amount", fmt.Errorf("%s is negative", total))
	}

	ppk := price
	o.pricePerKilo = &ppk
	o.subtotal = subtotal
	o.total = total
	o.status = next
	return nil
}

// ChangeStatus moves the order along the lifecycle. Notes replace the stored
// ones only when non-empty.
func (o *Order) ChangeStatus(next Status, notes string) error {
	if err := next.Validate(); err != nil {
		return err
	}
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}
	o.status = newStatus
	if notes != "" {
		o.notes = notes
	}
	return nil
}

// Cancel moves the order to Cancelled and records the reason in the notes as
// "Cancelled - <reason>: <notes>" or "Cancelled - <reason>". Cancelling a
// cancelled order fails with ErrAlreadyCancelled and leaves it untouched.
func (o *Order) Cancel(reason, notes string) error {
	if o.status == Cancelled {
		return errs.NewConflictErrorWithCause("order", o.id.String(), ErrAlreadyCancelled)
	}
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	next, err := o.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	o.status = next
	if notes != "" {
		o.notes = fmt.Sprintf("Cancelled - %s: %s", reason, notes)
	} else {
		o.notes = fmt.Sprintf("Cancelled - %s", reason)
	}
	return nil
}

func (o *Order) recalculate() error {
	total := kernel.Money(o.subtotal.Add(o.deliveryFee).Sub(o.discount))
	if total.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("voucher_discount",
			fmt.Errorf("discount %s exceeds subtotal plus delivery fee", o.discount))
	}
	o.total = total
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setParties(customerID, shopID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer_id", err)
	}
	if err := shopID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shop_id", err)
	}
	o.customerID = customerID
	o.shopID = shopID
	return nil
}

func (o *Order) setCart(cart Cart) error {
	if cart.IsEmpty() {
		return errs.NewValueIsRequiredError("cart")
	}
	o.cart = cart
	return nil
}

func (o *Order) setWeight(weight decimal.Decimal) error {
	if err := kernel.RequireNonNegative("weight", weight); err != nil {
		return err
	}
	o.weight = kernel.Weight(weight)
	return nil
}

func (o *Order) setAmounts(a Amounts) error {
	if err := errors.Join(
		kernel.RequireNonNegative("subtotal", a.Subtotal),
		kernel.RequireNonNegative("delivery_fee", a.DeliveryFee),
		kernel.RequireNonNegative("voucher_discount", a.VoucherDiscount),
	); err != nil {
		return err
	}
	o.subtotal = kernel.Money(a.Subtotal)
	o.deliveryFee = kernel.Money(a.DeliveryFee)
	o.discount = kernel.Money(a.VoucherDiscount)
	return nil
}

func (o *Order) setDelivery(d Delivery) error {
	if strings.TrimSpace(d.Type) == "" {
		return errs.NewValueIsRequiredError("delivery_type")
	}
	o.delivery = d
	return nil
}

func (o *Order) setSchedule(s Schedule) error {
	if s.Date != "" {
		if _, err := time.Parse(time.DateOnly, s.Date); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("scheduled_date", err)
		}
	}
	if s.Time != "" {
		if _, err := time.Parse("15:04", s.Time); err != nil {
			if _, err = time.Parse(time.TimeOnly, s.Time); err != nil {
				return errs.NewValueIsInvalidErrorWithCause("scheduled_time", err)
			}
		}
	}
	o.schedule = s
	return nil
}
