package commands

import (
	"context"

	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
)

// AnswerResult describes what an answer changed.
type AnswerResult struct {
	// Changed is false when the same answer was already recorded.
	Changed bool

	// Order is set when a linked order changed status.
	Order *OrderChange
}

// AnswerNotificationCommandHandler records accept and decline answers.
//
// Business rules:
//   - repeating an answer is a no-op, the linked order is not touched again
//   - the opposite answer is a conflict
//   - accept moves a linked order to Processing unless it already is
//   - decline moves a linked order to Cancelled unless it already is
//   - if the order cannot move, the notification stays unanswered
type AnswerNotificationCommandHandler struct {
	uowFactory  UoWFactory
	broadcaster ports.Broadcaster
}

// NewAnswerNotificationCommandHandler creates a handler for notification answers.
func NewAnswerNotificationCommandHandler(uowFactory UoWFactory, broadcaster ports.Broadcaster) AnswerNotificationCommandHandler {
	return AnswerNotificationCommandHandler{
		uowFactory:  uowFactory,
		broadcaster: broadcaster,
	}
}

// Handle applies the answer in one transaction and broadcasts status_update
// after the commit when the linked order changed.
func (h AnswerNotificationCommandHandler) Handle(ctx context.Context, cmd AnswerNotificationCommand) (AnswerResult, error) {
	if err := cmd.Validate(); err != nil {
		return AnswerResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AnswerResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	notificationRepo := uow.NotificationRepository()
	n, err := notificationRepo.GetForUpdate(ctx, cmd.NotificationID())
	if err != nil {
		return AnswerResult{}, err
	}

	changed, err := answer(n, cmd.Answer())
	if err != nil || !changed {
		return AnswerResult{}, err
	}

	var changedOrder *order.Order
	if orderID := n.LinkedOrderID(); orderID != nil {
		orderRepo := uow.OrderRepository()
		o, getErr := orderRepo.GetForUpdate(ctx, *orderID)
		if getErr != nil {
			return AnswerResult{}, getErr
		}

		target := order.Processing
		if cmd.Answer() == Decline {
			target = order.Cancelled
		}
		if o.Status() != target {
			if err = o.ChangeStatus(target, ""); err != nil {
				return AnswerResult{}, err
			}
			if err = orderRepo.Update(ctx, o); err != nil {
				return AnswerResult{}, err
			}
			changedOrder = o
		}
	}

	if err = notificationRepo.Update(ctx, n); err != nil {
		return AnswerResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AnswerResult{}, err
	}

	result := AnswerResult{Changed: true}
	if changedOrder != nil {
		publishStatus(ctx, h.broadcaster, changedOrder)
		change := changeOf(changedOrder)
		result.Order = &change
	}
	return result, nil
}

func answer(n *notification.Notification, a Answer) (bool, error) {
	if a == Decline {
		return n.Decline()
	}
	return n.Accept()
}
