package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"gorm.io/gorm"
)

// GormNotificationRepository is a GORM implementation of NotificationRepository
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Create creates a new notification
func (r *GormNotificationRepository) Create(notification *models.Notification) error {
	notification.ID = uuid.NewString()
	notification.Normalize()
	notification.CreatedAt = time.Now()
	return r.db.Create(notification).Error
}

// FindByID finds a notification by ID
func (r *GormNotificationRepository) FindByID(id string) (*models.Notification, error) {
	var notification models.Notification
	if err := r.db.First(&notification, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &notification, nil
}

// ListByUser returns the notifications addressed to a user
func (r *GormNotificationRepository) ListByUser(userID string) ([]models.Notification, error) {
	notifications := make([]models.Notification, 0)
	if err := r.db.Where("user_id = ?", userID).
		Order(creationOrder).
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkAsRead flags a notification as read
func (r *GormNotificationRepository) MarkAsRead(id string) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&notification, "id = ?", id).Error; err != nil {
			return err
		}
		notification.Read = true
		return tx.Model(&notification).Update("read", true).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &notification, nil
}
