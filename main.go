// File: eventra/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventra/config"
	"eventra/cron"
	"eventra/database"
	bookingRepo "eventra/database/repository/booking"
	notificationRepo "eventra/database/repository/notification"
	offeringRepo "eventra/database/repository/offering"
	referenceRepo "eventra/database/repository/reference"
	userRepoPkg "eventra/database/repository/user"
	"eventra/handlers"
	"eventra/middleware"
	"eventra/routes"
	"eventra/services/booking"
	"eventra/services/events"
	"eventra/services/notification"
	"eventra/services/offering"
	"eventra/services/user"
	"eventra/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// repositories.
	bookRepo := bookingRepo.NewMongoBookingRepo()
	refRepo := referenceRepo.NewMongoReferenceRepo()
	offerRepo := offeringRepo.NewMongoOfferedServiceRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	notifRepo := notificationRepo.NewMongoNotificationRepo()

	// Event dispatcher with the notification subscriber attached. Handlers
	// run off the request goroutine so a slow push never delays a response.
	dispatcher := events.NewDispatcher(logger)
	dispatcher.SetAsync(true)

	notificationService := &notification.DefaultNotificationService{
		Repo:   notifRepo,
		Logger: logger,
	}
	pushSender := &notification.PushSender{Client: utils.FCMClient}

	// Reminder queue: confirmed bookings enqueue a scheduled task, the
	// worker delivers it ahead of the service date.
	reminderQueue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer reminderQueue.Close()
	cron.InitReminderWorker(notificationService, userRepo, pushSender, logger)

	subscriber := &notification.Subscriber{
		Notifications: notificationService,
		Users:         userRepo,
		Offerings:     offerRepo,
		Push:          pushSender,
		Reminders:     &notification.ReminderScheduler{Client: reminderQueue, Logger: logger},
		Logger:        logger,
	}
	subscriber.Register(dispatcher)

	// services.
	userService := &user.DefaultUserService{
		Repo:   userRepo,
		Logger: logger,
	}
	offeringService := &offering.DefaultOfferedServiceService{
		Repo:   offerRepo,
		Cache:  utils.GetCacheClient(),
		Logger: logger,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:      bookRepo,
		Offerings: offerRepo,
		Refs:      &booking.ReferenceGenerator{Refs: refRepo},
		Events:    dispatcher,
		Logger:    logger,
	}

	// Assemble the handler bundle.
	hb := &routes.HandlerBundle{
		UserRepo:      userRepo,
		Auth:          handlers.NewAuthHandler(userService),
		Bookings:      handlers.NewBookingHandler(bookingService, logger),
		Offerings:     handlers.NewOfferingHandler(offeringService),
		Notifications: handlers.NewNotificationHandler(notificationService),
		Payments:      handlers.NewPaymentHandler(bookingService, logger),
	}
	routes.SetupRoutes(router, hb)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("starting server on port %s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown: stop accepting requests, then let in-flight event
	// handlers finish before exiting.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("forced shutdown: %v", err)
	}
	dispatcher.Wait()
	logger.Info("server stopped")
}
