package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"frontdesk/internal/config"
	"frontdesk/internal/events"
	"frontdesk/internal/frontdesk"
	"frontdesk/internal/logger"
	"frontdesk/internal/seed"
	"frontdesk/internal/server"
)

// @title Gym Front Desk API
// @version 1.0
// @description Kiosk and admin API for a single gym front desk.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logger.Init()
	logger.Info("Starting front desk", "port", cfg.Port, "timezone", cfg.Location.String(), "log_level", cfg.LogLevel)

	now := func() time.Time { return time.Now().In(cfg.Location) }

	snap := frontdesk.Snapshot{Plans: frontdesk.DefaultPlans()}
	if cfg.SeedDemo {
		snap = seed.Demo(now(), snap.Plans)
		logger.Info("Loaded demo data", "members", len(snap.Members), "payments", len(snap.Payments))
	}
	store := frontdesk.NewStore(snap, now)

	var (
		publisher events.Publisher = events.NopPublisher{}
		feed      server.ActivityFeed
	)
	if cfg.RedisAddr != "" {
		redisPublisher := events.NewRedisPublisher(cfg.RedisAddr, cfg.EventsKey, cfg.EventsMaxLen)
		defer redisPublisher.Close()

		pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisPublisher.Ping(pingCtx); err != nil {
			logger.WithError(err).Warn("Redis unreachable, activity events will fail until it recovers", "addr", cfg.RedisAddr)
		} else {
			logger.Info("Activity feed connected", "addr", cfg.RedisAddr, "key", cfg.EventsKey)
		}
		pingCancel()

		publisher = redisPublisher
		feed = redisPublisher
	} else {
		logger.Info("REDIS_ADDR not set, activity feed disabled")
	}

	service := frontdesk.NewService(store, publisher)
	srv := server.New(cfg, frontdesk.NewHandler(service), feed)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
