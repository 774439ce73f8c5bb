package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationService handles user notifications
type NotificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// Create sends a notification to a user. It starts unread.
func (s *NotificationService) Create(userID, message string, link *string) (*models.Notification, error) {
	notification := &models.Notification{
		UserID:  userID,
		Message: message,
		Link:    link,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return notification, nil
}

// ListByUser returns the notifications of a user
func (s *NotificationService) ListByUser(userID string) ([]models.Notification, error) {
	notifications, err := s.notificationRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkAsRead flags a notification as read
func (s *NotificationService) MarkAsRead(id string) (*models.Notification, error) {
	notification, err := s.notificationRepo.MarkAsRead(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to mark notification as read: %w", err)
	}
	return notification, nil
}
