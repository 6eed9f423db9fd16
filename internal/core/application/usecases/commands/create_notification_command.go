package commands

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrCreateNotificationCommandIsNotConstructed = errors.New(
		"CreateNotificationCommand must be created via NewCreateNotificationCommand constructor",
	)
)

// CreateNotificationCommand sends a message to a customer or a shop.
type CreateNotificationCommand struct { //nolint:recvcheck //using for validation
	recipientID   kernel.UUID
	message       string
	fromName      string
	linkedOrderID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateNotificationCommand requires a recipient and a non-blank message.
// linkedOrderID may be nil.
func NewCreateNotificationCommand(
	recipientID kernel.UUID,
	message, fromName string,
	linkedOrderID *kernel.UUID,
) (CreateNotificationCommand, error) {
	var errList []error
	if err := recipientID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("recipient_id", err))
	}
	if strings.TrimSpace(message) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("message"))
	}
	if linkedOrderID != nil {
		if err := linkedOrderID.Validate(); err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("linked_order_id", err))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return CreateNotificationCommand{}, err
	}

	return CreateNotificationCommand{
		recipientID:   recipientID,
		message:       message,
		fromName:      fromName,
		linkedOrderID: linkedOrderID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateNotificationCommand) Validate() error {
	return c.guard.Validate(ErrCreateNotificationCommandIsNotConstructed)
}

func (c CreateNotificationCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

func (c CreateNotificationCommand) Message() string {
	return c.message
}

func (c CreateNotificationCommand) FromName() string {
	return c.fromName
}

func (c CreateNotificationCommand) LinkedOrderID() *kernel.UUID {
	return c.linkedOrderID
}
