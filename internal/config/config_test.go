package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "REDIS_ADDR", "EVENTS_KEY", "EVENTS_MAX_LEN", "TIMEZONE", "SEED_DEMO", "KIOSK_RATE_LIMIT_RPS", "KIOSK_RATE_LIMIT_BURST"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "", cfg.RedisAddr)
	assert.Equal(t, "frontdesk:events", cfg.EventsKey)
	assert.Equal(t, int64(1000), cfg.EventsMaxLen)
	assert.Equal(t, "Asia/Manila", cfg.Location.String())
	assert.True(t, cfg.SeedDemo)
	assert.Equal(t, 5.0, cfg.KioskRateLimitRPS)
	assert.Equal(t, 10, cfg.KioskRateLimitBurst)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("SEED_DEMO", "false")
	t.Setenv("EVENTS_MAX_LEN", "50")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, "UTC", cfg.Location.String())
	assert.False(t, cfg.SeedDemo)
	assert.Equal(t, int64(50), cfg.EventsMaxLen)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad timezone", "TIMEZONE", "Mars/Olympus"},
		{"bad seed flag", "SEED_DEMO", "maybe"},
		{"bad max len", "EVENTS_MAX_LEN", "-1"},
		{"bad rps", "KIOSK_RATE_LIMIT_RPS", "fast"},
		{"bad burst", "KIOSK_RATE_LIMIT_BURST", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
