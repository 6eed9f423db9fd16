package queries

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrListNotificationsQueryIsNotConstructed = errors.New(
		"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
	)
)

// NotificationView is the read model of a notification.
type NotificationView struct {
	ID            kernel.UUID
	RecipientID   kernel.UUID
	Message       string
	FromName      string
	LinkedOrderID *kernel.UUID
	Status        notification.Status
	IsRead        bool
	CreatedAt     time.Time
}

// ListNotificationsQuery lists every notification of a recipient, newest first.
type ListNotificationsQuery struct {
	recipientID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListNotificationsQuery(recipientID kernel.UUID) (ListNotificationsQuery, error) {
	if err := recipientID.Validate(); err != nil {
		return ListNotificationsQuery{}, errs.NewValueIsRequiredErrorWithCause("recipient_id", err)
	}
	return ListNotificationsQuery{recipientID: recipientID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

func (q ListNotificationsQuery) RecipientID() kernel.UUID {
	return q.recipientID
}

// ListNotificationsQueryHandler reads notifications.
type ListNotificationsQueryHandler struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewListNotificationsQueryHandler(db *gorm.DB, timeout time.Duration) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{db: db, timeout: timeout}
}

func (h ListNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListNotificationsQuery,
) ([]NotificationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := bounded(ctx, h.timeout)
	defer cancel()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, message, from_name, linked_transaction_id, status, is_read, created_at
		FROM notifications
		WHERE recipient_id = ?
		ORDER BY created_at DESC, id
	`, query.RecipientID().Bytes()).Rows()
	if err != nil {
		return nil, errs.NewPersistenceError("list notifications", err)
	}
	defer rows.Close()

	views := make([]NotificationView, 0)
	for rows.Next() {
		var (
			v      NotificationView
			id     uuid.UUID
			linked uuid.NullUUID
			status string
		)
		if err = rows.Scan(&id, &v.Message, &v.FromName, &linked, &status, &v.IsRead, &v.CreatedAt); err != nil {
			return nil, errs.NewPersistenceError("scan notification", err)
		}

		if v.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if linked.Valid {
			orderID, idErr := kernel.UUIDFromBytes(linked.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			v.LinkedOrderID = &orderID
		}
		if v.Status, err = notification.ParseStatus(status); err != nil {
			return nil, err
		}
		v.RecipientID = query.RecipientID()
		views = append(views, v)
	}
	if err = rows.Err(); err != nil {
		return nil, errs.NewPersistenceError("list notifications", err)
	}
	return views, nil
}
