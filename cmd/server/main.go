// Command server runs the Gigboard reference API.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gigboard/internal/cache"
	"gigboard/internal/config"
	"gigboard/internal/database"
	"gigboard/internal/middleware"
	"gigboard/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := middleware.NewLogger()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	redisClient := cache.New(cfg.RedisURL, logger)

	srv := server.NewServer(cfg, db, redisClient, logger)
	app := srv.App()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(ctx); err != nil {
			logger.Error("server shutdown error", "error", err)
		}
		if redisClient != nil {
			if err := redisClient.Close(); err != nil {
				logger.Error("redis shutdown error", "error", err)
			}
		}
	}()

	logger.Info("server starting", "port", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
