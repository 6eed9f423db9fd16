package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
)

// CreateNotificationCommandHandler stores pending, unread notifications. A
// linked order must exist.
type CreateNotificationCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateNotificationCommandHandler creates a handler for notifications.
func NewCreateNotificationCommandHandler(uowFactory UoWFactory) CreateNotificationCommandHandler {
	return CreateNotificationCommandHandler{uowFactory: uowFactory}
}

// Handle returns the id of the new notification.
func (h CreateNotificationCommandHandler) Handle(ctx context.Context, cmd CreateNotificationCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	n, err := notification.NewNotification(
		kernel.NewUUID(),
		cmd.RecipientID(),
		cmd.Message(),
		cmd.FromName(),
		cmd.LinkedOrderID(),
		time.Now(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if linked := cmd.LinkedOrderID(); linked != nil {
		if _, err = uow.OrderRepository().Get(ctx, *linked); err != nil {
			return kernel.UUID{}, err
		}
	}

	if err = uow.NotificationRepository().Add(ctx, n); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return n.ID(), nil
}
