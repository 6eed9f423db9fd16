// Package notificationrepo persists notifications in the notifications table.
package notificationrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting notifications.
type NotificationDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RecipientID         uuid.UUID  `gorm:"type:uuid;not null;index:idx_notifications_recipient,priority:1"`
	Message             string     `gorm:"type:text;not null"`
	FromName            string     `gorm:"type:varchar(255)"`
	LinkedTransactionID *uuid.UUID `gorm:"type:uuid;index"`
	Status              string     `gorm:"type:varchar(16);not null"`
	IsRead              bool       `gorm:"not null;default:false"`
	CreatedAt           time.Time  `gorm:"not null;index:idx_notifications_recipient,priority:2,sort:desc"`
}

// TableName specifies the database table name for notifications.
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	dto := NotificationDTO{
		ID:          n.ID().Bytes(),
		RecipientID: n.RecipientID().Bytes(),
		Message:     n.Message(),
		FromName:    n.FromName(),
		Status:      n.Status().String(),
		IsRead:      n.IsRead(),
		CreatedAt:   n.CreatedAt(),
	}
	if linked := n.LinkedOrderID(); linked != nil {
		id := linked.Bytes()
		dto.LinkedTransactionID = &id
	}
	return dto
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	var linked *kernel.UUID
	if dto.LinkedTransactionID != nil {
		orderID, err := kernel.UUIDFromBytes(dto.LinkedTransactionID[:])
		if err != nil {
			return nil, err
		}
		linked = &orderID
	}

	status, err := notification.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id, recipientID, dto.Message, dto.FromName, linked, status, dto.IsRead, dto.CreatedAt,
	)
}
