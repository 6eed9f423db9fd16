package commands

import (
	"context"
)

// MarkNotificationReadCommandHandler sets the read flag of a notification.
type MarkNotificationReadCommandHandler struct {
	uowFactory UoWFactory
}

func NewMarkNotificationReadCommandHandler(uowFactory UoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{uowFactory: uowFactory}
}

// Handle is idempotent: a notification that is already read is not written again.
func (h MarkNotificationReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationReadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	notificationRepo := uow.NotificationRepository()
	n, err := notificationRepo.GetForUpdate(ctx, cmd.NotificationID())
	if err != nil {
		return err
	}

	if !n.MarkRead() {
		return nil
	}

	if err = notificationRepo.Update(ctx, n); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
