// File: bookit/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookit/config"
	"bookit/cron"
	"bookit/database"
	bookingRepoPkg "bookit/database/repository/booking"
	reviewRepoPkg "bookit/database/repository/review"
	serviceRepoPkg "bookit/database/repository/service"
	userRepoPkg "bookit/database/repository/user"
	"bookit/handlers"
	"bookit/middleware"
	"bookit/routes"
	"bookit/services/booking"
	"bookit/services/catalogue"
	"bookit/services/review"
	"bookit/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	for name, ensure := range map[string]func() error{
		"services": serviceRepo.EnsureIndexes,
		"bookings": bookingRepo.EnsureIndexes,
		"reviews":  reviewRepo.EnsureIndexes,
		"users":    userRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo:          bookingRepo,
		ServiceRepo:   serviceRepo,
		AutoConfirm:   config.AppConfig.AutoConfirmBookings,
		CancelGrace:   config.CancelGrace(),
		BookingWindow: config.BookingWindow(),
	}
	reviewService := &review.DefaultReviewService{
		Repo:        reviewRepo,
		BookingRepo: bookingRepo,
	}
	catalogueService := &catalogue.DefaultCatalogueService{
		Repo: serviceRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:  userRepo,
		Booking:   handlers.NewBookingHandler(bookingService, logger),
		Review:    handlers.NewReviewHandler(reviewService, logger),
		Catalogue: handlers.NewCatalogueHandler(catalogueService, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background sweep: confirmed bookings whose end time has passed are
	// marked completed so reviews unlock without manual intervention.
	cron.InitSweepWorker(bookingService)

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
