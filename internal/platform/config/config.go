package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	Environment     string
	LogLevel        string
	ShutdownTimeout time.Duration
	Holidays        HolidaysConfig
	Redis           RedisConfig
	RateLimit       RateLimitConfig
}

// RateLimitConfig throttles /calculate per client address. A zero rate
// disables throttling.
type RateLimitConfig struct {
	PerSecond float64
	Burst     int
}

// HolidaysConfig configures the holiday feed and its cache.
type HolidaysConfig struct {
	URL        string
	Timeout    time.Duration
	CacheTTL   time.Duration
	RatePerSec float64
}

// RedisConfig configures the optional Redis holiday cache. An empty URL
// disables Redis and the in-memory cache is used instead.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultHolidaysURL is the public holiday feed.
const DefaultHolidaysURL = "https://content.capta.co/Recruitment/WorkingDays.json"

// IsProduction reports whether the service runs with ENVIRONMENT=production.
func (s Server) IsProduction() bool {
	return s.Environment == "production"
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	var errs envErrors
	cfg := Server{
		Addr:            stringEnv("WORKDAYS_ADDR", ":8080"),
		Environment:     stringEnv("ENVIRONMENT", "development"),
		LogLevel:        stringEnv("LOG_LEVEL", "info"),
		ShutdownTimeout: errs.duration("SHUTDOWN_TIMEOUT", 10*time.Second),
		Holidays: HolidaysConfig{
			URL:        stringEnv("HOLIDAYS_URL", DefaultHolidaysURL),
			Timeout:    errs.duration("HOLIDAYS_TIMEOUT", 5*time.Second),
			CacheTTL:   errs.duration("HOLIDAYS_CACHE_TTL", 12*time.Hour),
			RatePerSec: errs.float("HOLIDAYS_RATE_PER_SEC", 2),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     errs.int("REDIS_POOL_SIZE", 10),
			MinIdleConns: errs.int("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  errs.duration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  errs.duration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: errs.duration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		RateLimit: RateLimitConfig{
			PerSecond: errs.float("RATE_LIMIT_PER_SEC", 20),
			Burst:     errs.int("RATE_LIMIT_BURST", 40),
		},
	}
	if err := errs.err(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envErrors collects parse failures so every bad variable is reported at once.
type envErrors []string

func (e *envErrors) duration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		*e = append(*e, fmt.Sprintf("%s=%q is not a non-negative duration", key, v))
		return fallback
	}
	return d
}

func (e *envErrors) int(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		*e = append(*e, fmt.Sprintf("%s=%q is not a non-negative integer", key, v))
		return fallback
	}
	return n
}

func (e *envErrors) float(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		*e = append(*e, fmt.Sprintf("%s=%q is not a non-negative number", key, v))
		return fallback
	}
	return f
}

func (e envErrors) err() error {
	if len(e) == 0 {
		return nil
	}
	return fmt.Errorf("invalid configuration: %v", []string(e))
}
