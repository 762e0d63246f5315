package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campushub/config"
	"campushub/cron"
	"campushub/database"
	eventRepoPkg "campushub/database/repository/event"
	reminderRepoPkg "campushub/database/repository/reminder"
	userRepoPkg "campushub/database/repository/user"
	"campushub/handlers"
	"campushub/middleware"
	"campushub/routes"
	"campushub/services/event"
	"campushub/services/notification"
	"campushub/services/reminder"
	"campushub/services/user"
	"campushub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitDispatchCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	eventRepo := eventRepoPkg.NewMongoEventRepo()
	reminderRepo := reminderRepoPkg.NewMongoReminderRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	eventService := &event.DefaultEventService{
		Repo: eventRepo,
	}

	notificationService, err := notification.NewDefaultNotificationService(userRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	reminderService := &reminder.DefaultReminderService{
		Repo:     reminderRepo,
		Events:   eventRepo,
		Users:    userRepo,
		Notifier: notificationService,
		Marker:   reminder.NewRedisDispatchMarker(utils.GetDispatchCacheClient()),
	}

	eventHandler := handlers.NewEventHandler(eventService, logger)
	reminderHandler := handlers.NewReminderHandler(reminderService, logger)
	notificationHandler := handlers.NewNotificationHandler(userService, notificationService, logger)
	userHandler := handlers.NewUserHandler(userService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserSvc: userService,

		// Event endpoints.
		CreateEventHandler:           eventHandler.CreateEventHandler,
		UpdateEventHandler:           eventHandler.UpdateEventHandler,
		DeleteEventHandler:           eventHandler.DeleteEventHandler,
		GetAllEventsHandler:          eventHandler.GetAllEventsHandler,
		GetEventsByDepartmentHandler: eventHandler.GetEventsByDepartmentHandler,

		// Reminder endpoints.
		CreateReminderHandler: reminderHandler.CreateReminderHandler,
		UpdateReminderHandler: reminderHandler.UpdateReminderHandler,
		DeleteReminderHandler: reminderHandler.DeleteReminderHandler,
		ListRemindersHandler:  reminderHandler.ListRemindersHandler,

		// Notification endpoints.
		SaveTokenHandler:        notificationHandler.SaveTokenHandler,
		TestNotificationHandler: notificationHandler.TestNotificationHandler,

		// User endpoints.
		SaveProfileHandler: userHandler.SaveProfileHandler,
		GetAllUsersHandler: userHandler.GetAllUsersHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the scheduled reminder pipeline and health monitor.
	cron.InitReminderWorker(reminderService)
	cron.InitReminderScheduler()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetDispatchCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
