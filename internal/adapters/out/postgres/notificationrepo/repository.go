package notificationrepo

import (
	"context"

	"laundry/internal/adapters/out/postgres/storeerr"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormNotificationRepository implements NotificationRepository using GORM.
type GormNotificationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormNotificationRepository creates a new GORM notification repository.
func NewGormNotificationRepository(db *gorm.DB, tracker aggregateTracker) *GormNotificationRepository {
	return &GormNotificationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new notification to the database.
func (r *GormNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	dto := fromDomain(n)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return storeerr.Wrap("insert notification", err)
	}

	r.tracker.TrackAggregate(n.ID(), n)
	return nil
}

// Update writes the status and read flag of a notification.
func (r *GormNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	dto := fromDomain(n)
	result := r.db.WithContext(ctx).Model(&NotificationDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":  dto.Status,
		"is_read": dto.IsRead,
	})
	if result.Error != nil {
		return storeerr.Wrap("update notification", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", n.ID().String())
	}

	r.tracker.TrackAggregate(n.ID(), n)
	return nil
}

// GetForUpdate retrieves a notification and locks its row until the
// transaction ends.
func (r *GormNotificationRepository) GetForUpdate(
	ctx context.Context, id kernel.UUID,
) (*notification.Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NotificationDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		return nil, storeerr.NotFound("load notification", "notification", id.String(), err)
	}

	return toDomain(dto)
}
