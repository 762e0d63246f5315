package notification

import (
	"context"
	"errors"
	"fmt"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"

	userRepo "campushub/database/repository/user"
	"campushub/models"
	"campushub/utils"
)

// ErrNoToken is returned when the addressed user has no device token on file.
var ErrNoToken = errors.New("no device token registered for user")

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	// SendToToken delivers a payload to an already-resolved device token.
	SendToToken(ctx context.Context, token string, payload models.PushPayload) error
	// SendTestNotification pushes an immediate test alert to the caller's
	// registered device; ErrNoToken if none is on file.
	SendTestNotification(ctx context.Context, uid, eventTitle string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Users userRepo.UserRepository
}

func NewDefaultNotificationService(users userRepo.UserRepository) (*DefaultNotificationService, error) {
	if users == nil {
		return nil, fmt.Errorf("notification service initialization error: user repository is nil")
	}
	return &DefaultNotificationService{Users: users}, nil
}

// SendToToken builds the FCM message with the platform delivery hints the
// clients expect (sound, channel, web badge) and hands it to Messaging.
func (s *DefaultNotificationService) SendToToken(ctx context.Context, token string, payload models.PushPayload) error {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Data: payload.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "event-reminders",
				Sound:     "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound:          "default",
					MutableContent: true,
				},
			},
		},
		Webpush: &messaging.WebpushConfig{
			FCMOptions: &messaging.WebpushFCMOptions{
				Link: "/student",
			},
		},
	}

	response, err := utils.FCMClient.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("SendToToken: failed to send FCM message: %w", err)
	}
	utils.GetLogger().Debug("SendToToken: message sent", zap.String("response", response))
	return nil
}

func (s *DefaultNotificationService) SendTestNotification(ctx context.Context, uid, eventTitle string) error {
	u, err := s.Users.GetByID(ctx, uid)
	if err != nil {
		return fmt.Errorf("SendTestNotification: could not find user %s: %w", uid, err)
	}
	if u.FCMToken == "" {
		return ErrNoToken
	}
	if eventTitle == "" {
		eventTitle = "Test Event"
	}

	payload := models.PushPayload{
		Title: "Test Notification",
		Body:  fmt.Sprintf("Testing push notifications for: %s", eventTitle),
		Data:  map[string]string{"type": "test"},
	}
	return s.SendToToken(ctx, u.FCMToken, payload)
}
