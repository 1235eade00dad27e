// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"garagehub/config"
	"garagehub/database"
	appointmentRepoPkg "garagehub/database/repository/appointment"
	availabilityRepoPkg "garagehub/database/repository/availability"
	garageRepoPkg "garagehub/database/repository/garage"
	"garagehub/handlers"
	"garagehub/routes"
	appointmentSvc "garagehub/services/appointment"
	availabilitySvc "garagehub/services/availability"
	"garagehub/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	availRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	garageRepo := garageRepoPkg.NewMongoGarageRepo()

	if err := apptRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure appointment indexes: %v", err)
	}
	if err := availRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure availability indexes: %v", err)
	}

	// services.
	appointmentService := &appointmentSvc.DefaultAppointmentService{
		Repo:          apptRepo,
		Garages:       garageRepo,
		Availability:  availRepo,
		EnforceWindow: config.AppConfig.EnforceAvailabilityWindow,
		LeadTime:      time.Duration(config.AppConfig.RescheduleLeadHours) * time.Hour,
	}
	availabilityService := &availabilitySvc.DefaultAvailabilityService{
		Repo:  availRepo,
		Cache: utils.GetCacheClient(),
	}

	appointmentHandler := &handlers.AppointmentHandler{Service: appointmentService}
	availabilityHandler := &handlers.AvailabilityHandler{Service: availabilityService}

	// Register routes with the assembled handler bundle.
	handlerBundle := handlers.NewHandlerBundle(appointmentHandler, availabilityHandler)
	routes.RegisterRoutes(router, handlerBundle)

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
