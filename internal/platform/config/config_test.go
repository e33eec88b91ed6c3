package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"WORKDAYS_ADDR", "HOLIDAYS_URL", "HOLIDAYS_TIMEOUT", "REDIS_URL", "REDIS_POOL_SIZE", "LOG_LEVEL", "ENVIRONMENT", "RATE_LIMIT_PER_SEC", "RATE_LIMIT_BURST"} {
			t.Setenv(key, "")
		}

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, DefaultHolidaysURL, cfg.Holidays.URL)
		assert.Equal(t, 5*time.Second, cfg.Holidays.Timeout)
		assert.Equal(t, 12*time.Hour, cfg.Holidays.CacheTTL)
		assert.Equal(t, 2.0, cfg.Holidays.RatePerSec)
		assert.Empty(t, cfg.Redis.URL)
		assert.Equal(t, 10, cfg.Redis.PoolSize)
		assert.Equal(t, 20.0, cfg.RateLimit.PerSecond)
		assert.Equal(t, 40, cfg.RateLimit.Burst)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("WORKDAYS_ADDR", ":9090")
		t.Setenv("HOLIDAYS_URL", "http://feed.local/holidays.json")
		t.Setenv("HOLIDAYS_TIMEOUT", "750ms")
		t.Setenv("HOLIDAYS_RATE_PER_SEC", "0")
		t.Setenv("REDIS_URL", "redis://localhost:6379/0")
		t.Setenv("REDIS_POOL_SIZE", "4")
		t.Setenv("ENVIRONMENT", "production")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, "http://feed.local/holidays.json", cfg.Holidays.URL)
		assert.Equal(t, 750*time.Millisecond, cfg.Holidays.Timeout)
		assert.Zero(t, cfg.Holidays.RatePerSec)
		assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
		assert.Equal(t, 4, cfg.Redis.PoolSize)
		assert.True(t, cfg.IsProduction())
	})

	t.Run("reports every invalid variable", func(t *testing.T) {
		t.Setenv("HOLIDAYS_TIMEOUT", "soon")
		t.Setenv("REDIS_POOL_SIZE", "-1")

		_, err := FromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HOLIDAYS_TIMEOUT")
		assert.Contains(t, err.Error(), "REDIS_POOL_SIZE")
	})
}
