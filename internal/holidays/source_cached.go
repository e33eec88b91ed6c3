package holidays

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"workdays/pkg/platform/sentinel"
)

// CachedSource reads through a Cache in front of another Source. Cache
// failures are logged and never fail a fetch.
type CachedSource struct {
	source Source
	cache  Cache
	key    string
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedSource caches source results under key for ttl.
func NewCachedSource(source Source, cache Cache, key string, ttl time.Duration, logger *slog.Logger) *CachedSource {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CachedSource{source: source, cache: cache, key: key, ttl: ttl, logger: logger}
}

// Fetch returns the cached set, or fetches and caches a fresh one.
func (s *CachedSource) Fetch(ctx context.Context) (Set, error) {
	set, err := s.cache.Load(ctx, s.key)
	if err == nil {
		return set, nil
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		s.logger.WarnContext(ctx, "holiday cache read failed", "key", s.key, "error", err)
	}

	set, err = s.source.Fetch(ctx)
	if err != nil {
		return Set{}, err
	}

	if err := s.cache.Store(ctx, s.key, set, s.ttl); err != nil {
		s.logger.WarnContext(ctx, "holiday cache write failed", "key", s.key, "error", err)
	}
	return set, nil
}
