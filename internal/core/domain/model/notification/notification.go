package notification

import (
	"errors"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrNotificationIsNotConstructed is returned when a Notification was not
	// built by NewNotification or RestoreNotification.
	ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")

	// ErrAlreadyAnswered is the cause of the conflict returned when a
	// notification that was accepted is declined, or the other way round.
	ErrAlreadyAnswered = errors.New("notification was already answered")
)

// Notification is a message addressed to a customer or a shop, optionally
// linked to the order it is about.
type Notification struct {
	id            kernel.UUID
	recipientID   kernel.UUID
	message       string
	fromName      string
	linkedOrderID *kernel.UUID
	status        Status
	isRead        bool
	createdAt     time.Time

	isConstructed bool
}

// NewNotification creates a pending, unread notification.
func NewNotification(
	id, recipientID kernel.UUID,
	message, fromName string,
	linkedOrderID *kernel.UUID,
	now time.Time,
) (*Notification, error) {
	n := &Notification{
		status:        Pending,
		fromName:      strings.TrimSpace(fromName),
		createdAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		n.setID(id),
		n.setRecipient(recipientID),
		n.setMessage(message),
		n.setLinkedOrder(linkedOrderID),
	); err != nil {
		return nil, err
	}
	return n, nil
}

// RestoreNotification rebuilds a notification loaded from storage.
func RestoreNotification(
	id, recipientID kernel.UUID,
	message, fromName string,
	linkedOrderID *kernel.UUID,
	status Status,
	isRead bool,
	createdAt time.Time,
) (*Notification, error) {
	n, err := NewNotification(id, recipientID, message, fromName, linkedOrderID, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	n.status = status
	n.isRead = isRead
	return n, nil
}

// Validate ensures the Notification was built through a constructor.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) ID() kernel.UUID {
	return n.id
}

func (n *Notification) RecipientID() kernel.UUID {
	return n.recipientID
}

func (n *Notification) Message() string {
	return n.message
}

// FromName is the sender's display name, empty for system messages.
func (n *Notification) FromName() string {
	return n.fromName
}

// LinkedOrderID returns the order the notification is about, or nil.
func (n *Notification) LinkedOrderID() *kernel.UUID {
	if n.linkedOrderID == nil {
		return nil
	}
	id := *n.linkedOrderID
	return &id
}

func (n *Notification) Status() Status {
	return n.status
}

func (n *Notification) IsRead() bool {
	return n.isRead
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// Accept answers the notification positively and marks it read. It reports
// false without error when the notification was already accepted.
func (n *Notification) Accept() (bool, error) {
	return n.answer(Accepted)
}

// Decline answers the notification negatively and marks it read. It reports
// false without error when the notification was already cancelled.
func (n *Notification) Decline() (bool, error) {
	return n.answer(Cancelled)
}

// MarkRead flags the notification as read. It reports whether anything changed.
func (n *Notification) MarkRead() bool {
	if n.isRead {
		return false
	}
	n.isRead = true
	return true
}

func (n *Notification) answer(to Status) (bool, error) {
	switch n.status {
	case to:
		return false, nil
	case Pending:
		n.status = to
		n.isRead = true
		return true, nil
	default:
		return false, errs.NewConflictErrorWithCause("notification", n.id.String()+" is "+n.status.String(), ErrAlreadyAnswered)
	}
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setRecipient(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("recipient_id", err)
	}
	n.recipientID = recipientID
	return nil
}

func (n *Notification) setMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return errs.NewValueIsRequiredError("message")
	}
	n.message = message
	return nil
}

func (n *Notification) setLinkedOrder(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("linked_order_id", err)
	}
	id := *orderID
	n.linkedOrderID = &id
	return nil
}
