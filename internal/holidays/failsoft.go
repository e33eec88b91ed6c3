package holidays

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"workdays/internal/holidays/metrics"
	"workdays/pkg/platform/circuit"
)

// Status describes how a served Set was obtained.
type Status string

const (
	// StatusFresh: the set came from the source.
	StatusFresh Status = "fresh"
	// StatusStale: the source failed; the last good set was served.
	StatusStale Status = "stale"
	// StatusDegraded: the source failed and no good set was known; the set is empty.
	StatusDegraded Status = "degraded"
)

// Result is what FailSoft hands to a computation. Set is fixed for the
// lifetime of the computation.
type Result struct {
	Set    Set
	Status Status
}

// Degraded reports whether the set did not come from the source.
func (r Result) Degraded() bool {
	return r.Status != StatusFresh
}

// FailSoft never fails: source errors degrade to the last good set or to an
// empty set. Concurrent calls share one in-flight fetch, and a circuit breaker
// stops calling a failing source until its cooldown elapses.
type FailSoft struct {
	source  Source
	breaker *circuit.Breaker
	logger  *slog.Logger
	metrics *metrics.Metrics

	group singleflight.Group

	mu       sync.RWMutex
	lastGood *Set
}

// FailSoftOption configures FailSoft.
type FailSoftOption func(*FailSoft)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) FailSoftOption {
	return func(f *FailSoft) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *metrics.Metrics) FailSoftOption {
	return func(f *FailSoft) {
		f.metrics = m
	}
}

// WithBreaker replaces the default breaker (3 failures, 30s cooldown).
func WithBreaker(b *circuit.Breaker) FailSoftOption {
	return func(f *FailSoft) {
		if b != nil {
			f.breaker = b
		}
	}
}

// NewFailSoft wraps source.
func NewFailSoft(source Source, opts ...FailSoftOption) (*FailSoft, error) {
	if source == nil {
		return nil, errSourceRequired
	}
	f := &FailSoft{
		source:  source,
		breaker: circuit.New("holiday-feed", circuit.WithFailureThreshold(3), circuit.WithCooldown(30*time.Second)),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f, nil
}

const flightKey = "holidays"

// Holidays returns the set to use for one computation. If ctx ends before the
// shared fetch completes, the caller gets the fallback immediately while the
// fetch continues for the others.
func (f *FailSoft) Holidays(ctx context.Context) Result {
	if !f.breaker.Allow() {
		f.metrics.IncrementFetch("circuit_open")
		f.logger.DebugContext(ctx, "holiday feed circuit open, serving fallback")
		return f.fallback(ctx)
	}

	ch := f.group.DoChan(flightKey, func() (any, error) {
		return f.fetch(context.WithoutCancel(ctx))
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return f.fallback(ctx)
		}
		f.metrics.IncrementServed(string(StatusFresh))
		return Result{Set: res.Val.(Set), Status: StatusFresh}
	case <-ctx.Done():
		f.logger.WarnContext(ctx, "holiday fetch abandoned by caller", "error", ctx.Err())
		return f.fallback(ctx)
	}
}

func (f *FailSoft) fetch(ctx context.Context) (Set, error) {
	start := time.Now()
	set, err := f.source.Fetch(ctx)
	f.metrics.ObserveFetchLatency(time.Since(start))

	if err != nil {
		f.metrics.IncrementFetch("failure")
		_, change := f.breaker.RecordFailure()
		f.logger.WarnContext(ctx, "holiday fetch failed, continuing without fresh holidays",
			"category", string(Category(err)),
			"retryable", IsRetryable(err),
			"error", err,
		)
		if change.Opened {
			f.logger.WarnContext(ctx, "holiday feed circuit opened", "breaker", f.breaker.Name())
		}
		return Set{}, err
	}

	f.metrics.IncrementFetch("success")
	if _, change := f.breaker.RecordSuccess(); change.Closed {
		f.logger.InfoContext(ctx, "holiday feed circuit closed", "breaker", f.breaker.Name())
	}
	f.mu.Lock()
	f.lastGood = &set
	f.mu.Unlock()
	f.metrics.SetLoaded(set.Len())
	return set, nil
}

func (f *FailSoft) fallback(ctx context.Context) Result {
	f.mu.RLock()
	last := f.lastGood
	f.mu.RUnlock()

	if last != nil {
		f.metrics.IncrementServed(string(StatusStale))
		return Result{Set: *last, Status: StatusStale}
	}
	f.metrics.IncrementServed(string(StatusDegraded))
	f.logger.WarnContext(ctx, "serving empty holiday set")
	return Result{Set: Set{}, Status: StatusDegraded}
}
