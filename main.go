// File: bookit/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookit/client"
	"bookit/config"
	"bookit/handlers"
	"bookit/middleware"
	"bookit/routes"
	"bookit/services/catalog"
	"bookit/services/checkout"
	"bookit/session"
	"bookit/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitStateStore()
	utils.InitCache()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	routes.SetupRenderer(router, "views/*.html")

	// Remote booking API client.
	apiClient := client.New(
		config.AppConfig.APIBaseURL,
		time.Duration(config.AppConfig.APITimeoutSeconds)*time.Second,
		logger,
	)

	// Transient navigation state and catalog cache.
	sessions := session.NewRedisStore(utils.GetStateClient())
	cache := catalog.NewRedisCache(utils.GetCacheClient())

	// Services.
	catalogService := catalog.NewService(apiClient, cache, logger)
	checkoutService := checkout.NewService(apiClient, sessions, logger)

	handlerSet := &routes.Handlers{
		Catalog:    handlers.NewCatalogHandler(catalogService, logger),
		Experience: handlers.NewExperienceHandler(catalogService, sessions, logger),
		Checkout:   handlers.NewCheckoutHandler(checkoutService, sessions, logger),
		Success:    handlers.NewSuccessHandler(sessions, logger),
		Bookings:   handlers.NewBookingLookupHandler(apiClient, logger),
		Health:     handlers.NewHealthHandler(utils.GetStateClient(), utils.GetCacheClient()),
	}

	routes.RegisterRoutes(router, handlerSet)

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
