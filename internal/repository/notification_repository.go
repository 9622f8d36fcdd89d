package repository

import (
	"hr-portal-backend/internal/model"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(log *model.NotificationLog) error
	List(notificationType string, limit int) ([]model.NotificationLog, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db}
}

func (r *notificationRepository) Create(log *model.NotificationLog) error {
	return r.db.Create(log).Error
}

func (r *notificationRepository) List(notificationType string, limit int) ([]model.NotificationLog, error) {
	logs := []model.NotificationLog{}
	query := r.db.Model(&model.NotificationLog{})
	if notificationType != "" {
		query = query.Where("notification_type = ?", notificationType)
	}
	err := query.Order("created_at desc").Limit(limit).Find(&logs).Error
	return logs, err
}
