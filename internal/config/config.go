package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	LogLevel string

	RedisAddr    string
	EventsKey    string
	EventsMaxLen int64

	Location *time.Location
	SeedDemo bool

	KioskRateLimitRPS   float64
	KioskRateLimitBurst int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		RedisAddr: getEnv("REDIS_ADDR", ""),
		EventsKey: getEnv("EVENTS_KEY", "frontdesk:events"),
	}

	var err error
	if cfg.EventsMaxLen, err = strconv.ParseInt(getEnv("EVENTS_MAX_LEN", "1000"), 10, 64); err != nil || cfg.EventsMaxLen <= 0 {
		return nil, fmt.Errorf("invalid EVENTS_MAX_LEN: %q", os.Getenv("EVENTS_MAX_LEN"))
	}

	tz := getEnv("TIMEZONE", "Asia/Manila")
	if cfg.Location, err = time.LoadLocation(tz); err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", tz, err)
	}

	if cfg.SeedDemo, err = strconv.ParseBool(getEnv("SEED_DEMO", "true")); err != nil {
		return nil, fmt.Errorf("invalid SEED_DEMO: %w", err)
	}

	if cfg.KioskRateLimitRPS, err = strconv.ParseFloat(getEnv("KIOSK_RATE_LIMIT_RPS", "5"), 64); err != nil || cfg.KioskRateLimitRPS <= 0 {
		return nil, fmt.Errorf("invalid KIOSK_RATE_LIMIT_RPS: %q", os.Getenv("KIOSK_RATE_LIMIT_RPS"))
	}

	if cfg.KioskRateLimitBurst, err = strconv.Atoi(getEnv("KIOSK_RATE_LIMIT_BURST", "10")); err != nil || cfg.KioskRateLimitBurst <= 0 {
		return nil, fmt.Errorf("invalid KIOSK_RATE_LIMIT_BURST: %q", os.Getenv("KIOSK_RATE_LIMIT_BURST"))
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
