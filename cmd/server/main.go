// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chesters/restock-backend/internal/api"
	"github.com/chesters/restock-backend/internal/cache"
	"github.com/chesters/restock-backend/internal/config"
	"github.com/chesters/restock-backend/internal/ordering"
	"github.com/chesters/restock-backend/internal/repository/postgres"
	"github.com/chesters/restock-backend/internal/service"
	"github.com/chesters/restock-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Delivery schedule comes from config; defaults are the standing
	// Monday/Thursday truck days.
	schedule, err := ordering.ParseSchedule(cfg.Schedule.FirstDeliveryDay, cfg.Schedule.SecondDeliveryDay)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Invalid delivery schedule")
	}

	// Initialize database
	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Order list cache (no-op when disabled)
	orderCache, err := cache.NewOrderListCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Cache unavailable, continuing without it")
		orderCache = cache.NewNoopOrderListCache()
	}

	// Initialize services
	repo := postgres.NewInventoryRepository(db)
	services := &api.Services{
		InventoryService: service.NewInventoryService(repo, orderCache),
		OrderService:     service.NewOrderService(repo, orderCache, schedule),
	}

	// Initialize HTTP server
	router := api.NewRouter(services, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
