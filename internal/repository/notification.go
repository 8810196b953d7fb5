package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marketplace-backend/internal/model"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *model.OrderNotification) error
}

type notificationRepoImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepoImpl{
		db: db,
	}
}

func (r *notificationRepoImpl) Create(ctx context.Context, notification *model.OrderNotification) error {
	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(notification).Error
}
