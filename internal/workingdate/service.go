// Package workingdate is the entry point of a working date computation: it
// validates a request, resolves the anchor instant and the holiday set, and
// delegates the arithmetic to workingtime.
package workingdate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"workdays/internal/holidays"
	"workdays/internal/workingdate/metrics"
	"workdays/internal/workingtime"
	dErrors "workdays/pkg/domain-errors"
	"workdays/pkg/requestcontext"
)

// MaxDays bounds the working days of a single request.
const MaxDays = 100_000

// HolidayProvider supplies the holiday set for one computation.
type HolidayProvider interface {
	Holidays(ctx context.Context) holidays.Result
}

// Request is a validated-shape computation request. Date is optional.
type Request struct {
	Days  int
	Hours float64
	Date  string
}

// Result is the computed instant, in UTC.
type Result struct {
	Date          time.Time
	HolidayStatus holidays.Status
}

// Formatted returns Date as a UTC ISO-8601 string.
func (r *Result) Formatted() string {
	return FormatInstant(r.Date)
}

// Service computes working dates.
type Service struct {
	holidays HolidayProvider
	schedule workingtime.Schedule
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithSchedule overrides the default work schedule (tests).
func WithSchedule(schedule workingtime.Schedule) Option {
	return func(s *Service) {
		s.schedule = schedule
	}
}

// New creates a Service.
func New(provider HolidayProvider, opts ...Option) (*Service, error) {
	if provider == nil {
		return nil, fmt.Errorf("holiday provider is required")
	}
	s := &Service{
		holidays: provider,
		schedule: workingtime.DefaultSchedule,
		logger:   slog.New(slog.DiscardHandler),
		tracer:   otel.Tracer("workdays/workingdate"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if err := s.schedule.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// NextWorkingDate adds req.Days working days and then req.Hours working hours
// to the anchor instant. Invalid input fails with CodeInvalidParameters before
// the holiday set is fetched.
func (s *Service) NextWorkingDate(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "workingdate.NextWorkingDate", trace.WithAttributes(
		attribute.Int("workdays.days", req.Days),
		attribute.Float64("workdays.hours", req.Hours),
	))
	defer span.End()

	result, err := s.compute(ctx, req)
	s.metrics.ObserveLatency(time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if dErrors.Is(err, dErrors.CodeInvalidParameters) {
			s.metrics.IncrementOutcome("invalid")
		} else {
			s.metrics.IncrementOutcome("internal")
		}
		return nil, err
	}
	s.metrics.IncrementOutcome("ok")
	span.SetAttributes(attribute.String("workdays.holiday_status", string(result.HolidayStatus)))
	return result, nil
}

func (s *Service) compute(ctx context.Context, req Request) (*Result, error) {
	if req.Days < 0 || req.Days > MaxDays {
		return nil, dErrors.New(dErrors.CodeInvalidParameters,
			fmt.Sprintf("'days' must be an integer between 0 and %d", MaxDays))
	}
	hours, err := workingtime.HoursToDuration(req.Hours)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInvalidParameters,
			fmt.Sprintf("'hours' must be a number between 0 and %d", workingtime.MaxHours))
	}
	anchor, err := s.anchor(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveRequest(req.Days, req.Hours)

	served := s.holidays.Holidays(ctx)
	cal, err := workingtime.New(served.Set, workingtime.WithSchedule(s.schedule))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, err.Error())
	}

	computed := cal.Add(anchor, req.Days, hours).UTC()
	if y := computed.Year(); y < 1 || y > 9999 {
		return nil, dErrors.New(dErrors.CodeInternal,
			fmt.Sprintf("computed date %s is outside the supported range", computed))
	}

	s.logger.DebugContext(ctx, "working date computed",
		"request_id", requestcontext.RequestID(ctx),
		"anchor", anchor.Format(time.RFC3339),
		"days", req.Days,
		"hours", req.Hours,
		"result", FormatInstant(computed),
		"holiday_status", served.Status,
		"holidays", served.Set.Len(),
	)
	return &Result{Date: computed, HolidayStatus: served.Status}, nil
}

func (s *Service) anchor(ctx context.Context, date string) (time.Time, error) {
	if date == "" {
		return requestcontext.Now(ctx).In(s.schedule.Location), nil
	}
	anchor, err := ParseAnchor(date, s.schedule.Location)
	if err != nil {
		return time.Time{}, dErrors.Wrap(err, dErrors.CodeInvalidParameters,
			fmt.Sprintf("'date' must be an ISO-8601 timestamp (%s), got %q", acceptedAnchorForms, date))
	}
	return anchor, nil
}
