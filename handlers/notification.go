package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campushub/middleware"
	"campushub/services/notification"
	"campushub/services/user"
)

// NotificationHandler exposes the token-registration and test-notification
// callables.
type NotificationHandler struct {
	Users    user.UserService
	Notifier notification.NotificationService
	Logger   *zap.Logger
}

func NewNotificationHandler(users user.UserService, notifier notification.NotificationService, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{Users: users, Notifier: notifier, Logger: logger}
}

// SaveTokenHandler handles POST /api/notifications/token. The client calls
// it after the user grants notification permission.
func (h *NotificationHandler) SaveTokenHandler(c *gin.Context) {
	var body struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "FCM token is required"})
		return
	}

	uid := c.GetString(middleware.ContextUID)
	if err := h.Users.RegisterFCMToken(c.Request.Context(), uid, body.Token); err != nil {
		h.Logger.Error("SaveToken: failed to save FCM token", zap.String("userId", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save FCM token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "FCM token saved"})
}

// TestNotificationHandler handles POST /api/notifications/test: an immediate
// single push to the caller, erroring when no token is on file.
func (h *NotificationHandler) TestNotificationHandler(c *gin.Context) {
	var body struct {
		EventTitle string `json:"eventTitle"`
	}
	// Body is optional; ignore bind errors on an empty payload.
	_ = c.ShouldBindJSON(&body)

	uid := c.GetString(middleware.ContextUID)
	if err := h.Notifier.SendTestNotification(c.Request.Context(), uid, body.EventTitle); err != nil {
		if errors.Is(err, notification.ErrNoToken) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No FCM token found for user"})
			return
		}
		h.Logger.Error("TestNotification: failed to send", zap.String("userId", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to send test notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Test notification sent"})
}
