package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"workdays/internal/holidays"
	holidaymetrics "workdays/internal/holidays/metrics"
	"workdays/internal/platform/config"
	"workdays/internal/platform/httpserver"
	"workdays/internal/platform/logger"
	"workdays/internal/platform/redis"
	"workdays/internal/ratelimit"
	httptransport "workdays/internal/transport/http"
	"workdays/internal/workingdate"
	"workdays/internal/workingdate/handler"
	workingdatemetrics "workdays/internal/workingdate/metrics"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal packages.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "workdays: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	provider, err := buildHolidayProvider(cfg, log, reg, redisClient)
	if err != nil {
		return err
	}

	service, err := workingdate.New(provider,
		workingdate.WithLogger(log),
		workingdate.WithMetrics(workingdatemetrics.New(reg)),
	)
	if err != nil {
		return err
	}

	var limiter *ratelimit.Limiter
	if cfg.RateLimit.PerSecond > 0 {
		limiter = ratelimit.NewLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst)
	}

	health := map[string]httptransport.HealthCheck{}
	if redisClient != nil {
		health["redis"] = redisClient.Health
	}
	router := httptransport.NewRouter(httptransport.Config{
		Logger:          log,
		Gatherer:        reg,
		Health:          health,
		Routes:          []httptransport.Registrar{handler.New(service, log)},
		RouteMiddleware: []func(http.Handler) http.Handler{
			ratelimit.Middleware(limiter, log),
		},
	})

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting workdays",
			"addr", cfg.Addr,
			"environment", cfg.Environment,
			"holidays_url", cfg.Holidays.URL,
			"redis", redisClient != nil,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// buildHolidayProvider stacks feed → cache → fail-soft. Redis is the cache
// when configured, otherwise sets are cached in process.
func buildHolidayProvider(cfg config.Server, log *slog.Logger, reg prometheus.Registerer, redisClient *redis.Client) (*holidays.FailSoft, error) {
	feed, err := holidays.NewFeedSource(cfg.Holidays.URL,
		holidays.WithTimeout(cfg.Holidays.Timeout),
		holidays.WithRateLimit(cfg.Holidays.RatePerSec, 1),
		holidays.WithFeedLogger(log),
	)
	if err != nil {
		return nil, err
	}

	var cache holidays.Cache = holidays.NewMemoryCache()
	if redisClient != nil {
		cache = holidays.NewRedisCache(redisClient.Client)
	}
	cached := holidays.NewCachedSource(feed, cache, cfg.Holidays.URL, cfg.Holidays.CacheTTL, log)

	return holidays.NewFailSoft(cached,
		holidays.WithLogger(log),
		holidays.WithMetrics(holidaymetrics.New(reg)),
	)
}
