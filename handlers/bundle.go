package handlers

import (
	"github.com/gin-gonic/gin"

	"campushub/services/user"
)

// HandlerBundle carries the assembled handlers and the shared services the
// route middleware needs. Wired once in main.go.
type HandlerBundle struct {
	UserSvc user.UserService

	// Event endpoints.
	CreateEventHandler           gin.HandlerFunc
	UpdateEventHandler           gin.HandlerFunc
	DeleteEventHandler           gin.HandlerFunc
	GetAllEventsHandler          gin.HandlerFunc
	GetEventsByDepartmentHandler gin.HandlerFunc

	// Reminder endpoints.
	CreateReminderHandler gin.HandlerFunc
	UpdateReminderHandler gin.HandlerFunc
	DeleteReminderHandler gin.HandlerFunc
	ListRemindersHandler  gin.HandlerFunc

	// Notification endpoints.
	SaveTokenHandler        gin.HandlerFunc
	TestNotificationHandler gin.HandlerFunc

	// User endpoints.
	SaveProfileHandler gin.HandlerFunc
	GetAllUsersHandler gin.HandlerFunc
}
