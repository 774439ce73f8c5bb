package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/freelance-marketplace-api/internal/errors"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// ListNotifications returns the notifications of the user in the path
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	notifications, err := h.notificationService.ListByUser(c.Param("userId"))
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// CreateNotification sends a notification to a user
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	type CreateNotificationRequest struct {
		UserID  string  `json:"userId" binding:"required"`
		Message string  `json:"message" binding:"required"`
		Link    *string `json:"link"`
	}

	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, err)
		return
	}

	notification, err := h.notificationService.Create(req.UserID, req.Message, req.Link)
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusCreated, notification)
}

// MarkAsRead flags a notification as read
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	notification, err := h.notificationService.MarkAsRead(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotificationNotFound) {
			apierrors.NotFound(c, "Notification not found")
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, notification)
}
