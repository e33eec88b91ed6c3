package holidays

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

const (
	defaultFeedTimeout = 5 * time.Second
	maxFeedBodyBytes   = 1 << 20
)

// FeedSource fetches holidays with a single HTTP GET.
type FeedSource struct {
	url     string
	client  *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
	tracer  trace.Tracer
}

// FeedOption configures a FeedSource.
type FeedOption func(*FeedSource)

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) FeedOption {
	return func(s *FeedSource) {
		if c != nil {
			s.client = c
		}
	}
}

// WithTimeout sets the per-request timeout of the default client.
func WithTimeout(d time.Duration) FeedOption {
	return func(s *FeedSource) {
		if d > 0 {
			s.client = &http.Client{Timeout: d, Transport: s.client.Transport}
		}
	}
}

// WithRateLimit caps outbound requests per second. Zero disables throttling.
func WithRateLimit(perSecond float64, burst int) FeedOption {
	return func(s *FeedSource) {
		if perSecond <= 0 {
			s.limiter = nil
			return
		}
		s.limiter = rate.NewLimiter(rate.Limit(perSecond), max(burst, 1))
	}
}

// WithFeedLogger sets the logger.
func WithFeedLogger(logger *slog.Logger) FeedOption {
	return func(s *FeedSource) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewFeedSource builds a FeedSource for url.
func NewFeedSource(url string, opts ...FeedOption) (*FeedSource, error) {
	if url == "" {
		return nil, errors.New("feed url is required")
	}
	s := &FeedSource{
		url:     url,
		client:  &http.Client{Timeout: defaultFeedTimeout},
		limiter: rate.NewLimiter(rate.Limit(2), 1),
		logger:  slog.New(slog.DiscardHandler),
		tracer:  otel.Tracer("workdays/holidays"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// Fetch downloads and decodes the feed. Failures are *FeedError values.
func (s *FeedSource) Fetch(ctx context.Context) (Set, error) {
	ctx, span := s.tracer.Start(ctx, "holidays.FeedSource.Fetch",
		trace.WithAttributes(attribute.String("holidays.url", s.url)))
	defer span.End()

	set, err := s.fetch(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(Category(err)))
		return Set{}, err
	}
	span.SetAttributes(attribute.Int("holidays.count", set.Len()))
	return set, nil
}

func (s *FeedSource) fetch(ctx context.Context) (Set, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return Set{}, newFeedError(ErrorTimeout, s.url, "throttled", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return Set{}, newFeedError(ErrorUnavailable, s.url, "build request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return Set{}, classifyTransportError(s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fe := newFeedError(ErrorBadStatus, s.url, fmt.Sprintf("status %d", resp.StatusCode), nil)
		fe.Retryable = resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests
		return Set{}, fe
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBodyBytes))
	if err != nil {
		return Set{}, classifyTransportError(s.url, err)
	}

	doc, err := decodeFeed(body)
	if err != nil {
		return Set{}, newFeedError(ErrorBadData, s.url, "decode body", err)
	}

	set, rejected := NewSet(doc.entries)
	if len(rejected) > 0 || doc.skipped > 0 {
		s.logger.WarnContext(ctx, "holiday feed contained malformed entries",
			"url", s.url,
			"shape", doc.shape.String(),
			"rejected", len(rejected)+doc.skipped,
		)
	}
	return set, nil
}

func classifyTransportError(url string, err error) *FeedError {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return newFeedError(ErrorTimeout, url, "request timed out", err)
	}
	return newFeedError(ErrorUnavailable, url, "request failed", err)
}
