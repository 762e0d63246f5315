package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"campushub/handlers"
	"campushub/middleware"
	"campushub/utils"
)

// RegisterEventRoutes registers event browsing and admin management endpoints.
func RegisterEventRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/events")
	{
		api.Use(middleware.FirebaseAuthMiddleware(hb.UserSvc))
		api.GET("", hb.GetAllEventsHandler)
		api.GET("/department/:department", hb.GetEventsByDepartmentHandler)

		// Mutations require admin privileges.
		admin := api.Group("")
		admin.Use(middleware.RequireAdmin())
		admin.POST("", hb.CreateEventHandler)
		admin.PUT("/:id", hb.UpdateEventHandler)
		admin.DELETE("/:id", hb.DeleteEventHandler)
	}
}

// RegisterReminderRoutes registers the student reminder CRUD endpoints.
func RegisterReminderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reminders")
	{
		api.Use(middleware.FirebaseAuthMiddleware(hb.UserSvc))
		api.POST("", hb.CreateReminderHandler)
		api.PUT("/:id", hb.UpdateReminderHandler)
		api.DELETE("/:id", hb.DeleteReminderHandler)
		api.GET("", hb.ListRemindersHandler)
	}
}

// RegisterNotificationRoutes registers the token-registration and
// test-notification callables.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.FirebaseAuthMiddleware(hb.UserSvc))
		api.POST("/token", hb.SaveTokenHandler)
		api.POST("/test", hb.TestNotificationHandler)
	}
}

// RegisterUserRoutes registers profile and admin user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.FirebaseAuthMiddleware(hb.UserSvc))
		api.POST("/profile", hb.SaveProfileHandler)
	}

	admin := r.Group("/api/admin")
	{
		admin.Use(middleware.FirebaseAuthMiddleware(hb.UserSvc), middleware.RequireAdmin())
		admin.GET("/users", hb.GetAllUsersHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterEventRoutes(r, hb)
	RegisterReminderRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterHealthRoute(r)
}
