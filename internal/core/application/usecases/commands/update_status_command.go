package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var (
	ErrUpdateStatusCommandIsNotConstructed = errors.New(
		"UpdateStatusCommand must be created via NewUpdateStatusCommand constructor",
	)
)

// UpdateStatusCommand advances an order along its lifecycle.
type UpdateStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status
	notes   string

	guard guard.ConstructorGuard
}

// NewUpdateStatusCommand validates the order id and the target status.
// Empty notes leave the stored notes unchanged.
func NewUpdateStatusCommand(orderID kernel.UUID, status order.Status, notes string) (UpdateStatusCommand, error) {
	cmd := UpdateStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		status.Validate(),
	); err != nil {
		return UpdateStatusCommand{}, err
	}

	cmd.orderID = orderID
	cmd.status = status
	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStatusCommandIsNotConstructed)
}

func (c UpdateStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateStatusCommand) Status() order.Status {
	return c.status
}

func (c UpdateStatusCommand) Notes() string {
	return c.notes
}
