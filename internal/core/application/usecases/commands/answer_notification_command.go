package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrAnswerNotificationCommandIsNotConstructed = errors.New(
		"AnswerNotificationCommand must be created via NewAcceptNotificationCommand or NewDeclineNotificationCommand",
	)
)

// Answer is a recipient's reply to a notification.
type Answer int

const (
	Accept Answer = iota + 1
	Decline
)

func (a Answer) String() string {
	switch a {
	case Accept:
		return "accept"
	case Decline:
		return "decline"
	default:
		return "unknown"
	}
}

// AnswerNotificationCommand accepts or declines a notification and, when it
// is linked to an order, moves that order accordingly.
type AnswerNotificationCommand struct {
	notificationID kernel.UUID
	answer         Answer

	guard guard.ConstructorGuard
}

// NewAcceptNotificationCommand builds an accept answer.
func NewAcceptNotificationCommand(notificationID kernel.UUID) (AnswerNotificationCommand, error) {
	return newAnswerNotificationCommand(notificationID, Accept)
}

// NewDeclineNotificationCommand builds a decline answer.
func NewDeclineNotificationCommand(notificationID kernel.UUID) (AnswerNotificationCommand, error) {
	return newAnswerNotificationCommand(notificationID, Decline)
}

func newAnswerNotificationCommand(notificationID kernel.UUID, answer Answer) (AnswerNotificationCommand, error) {
	if err := notificationID.Validate(); err != nil {
		return AnswerNotificationCommand{}, err
	}
	return AnswerNotificationCommand{
		notificationID: notificationID,
		answer:         answer,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through a constructor.
func (c AnswerNotificationCommand) Validate() error {
	return c.guard.Validate(ErrAnswerNotificationCommandIsNotConstructed)
}

func (c AnswerNotificationCommand) NotificationID() kernel.UUID {
	return c.notificationID
}

func (c AnswerNotificationCommand) Answer() Answer {
	return c.answer
}
