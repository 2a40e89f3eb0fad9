package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/civiclink/backend/internal/config"
	"github.com/civiclink/backend/internal/logger"
	"github.com/civiclink/backend/internal/metrics"
	"github.com/civiclink/backend/internal/routes"
	"github.com/civiclink/backend/internal/services"
	"github.com/civiclink/backend/internal/store"
	"github.com/civiclink/backend/internal/validation"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	logger.Initialize(logger.Options{
		Level: cfg.LogLevel,
		File:  cfg.LogFile,
	})

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := validation.Register(); err != nil {
		logger.Fatal("Failed to register request validators", map[string]interface{}{
			"error": err.Error(),
		})
	}

	seed, err := store.ResolveSeed(cfg.SeedFile)
	if err != nil {
		logger.Fatal("Failed to load seed data", map[string]interface{}{
			"error":     err.Error(),
			"seed_file": cfg.SeedFile,
		})
	}

	st, err := store.NewSeeded(seed)
	if err != nil {
		logger.Fatal("Failed to build record store", map[string]interface{}{
			"error": err.Error(),
		})
	}

	m := metrics.New()
	service := services.NewComplaintService(st, m)
	r := routes.NewRouter(cfg, service, m)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	logger.Info("Starting CivicLink backend server", map[string]interface{}{
		"port":       cfg.Port,
		"gin_mode":   gin.Mode(),
		"complaints": st.Len(),
		"users":      len(seed.Users),
	})

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan
	logger.Info("Shutting down server gracefully...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		logger.Info("Server exited gracefully", nil)
	}
}
