// Package main is the entry point for the Marcus Savings Tracker API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/marcus-savings/backend/config"
	"github.com/marcus-savings/backend/internal/domain/entity"
	"github.com/marcus-savings/backend/internal/infra/db"
	"github.com/marcus-savings/backend/internal/infra/dependency"
	"github.com/marcus-savings/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Marcus Savings Tracker API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection. The tracker cannot function without its
	// store, so a connection failure is fatal.
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(&model.KVRecord{}); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Connect to redis for invite codes. Invites degrade gracefully without
	// it, so a failed ping only logs a warning.
	redisClient := connectRedis(&cfg.Redis)

	// Wire dependencies
	injector := dependency.NewInjector(cfg, database.DB(), redisClient)

	// Seed the simulated friends when enabled and none are stored yet
	if cfg.Demo.SeedFriends {
		seedCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := injector.FriendRepo.Seed(seedCtx, entity.DemoFriends()); err != nil {
			slog.Warn("Failed to seed demo friends", "error", err)
		}
		cancel()
	}

	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close redis connection", "error", err)
		}
	}

	slog.Info("Server exited properly")
}

// connectRedis opens the invite code store. Returns nil when redis is
// unreachable; invite generation then works without code verification.
func connectRedis(cfg *config.RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis unavailable, invite codes will not be stored", "error", err)
		_ = client.Close()
		return nil
	}

	return client
}
