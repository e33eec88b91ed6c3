package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"workdays/internal/workingdate"
	"workdays/pkg/platform/httputil"
	"workdays/pkg/requestcontext"
)

// HolidaysStatusHeader tells clients how fresh the holiday set behind the
// computed date was: fresh, stale or degraded.
const HolidaysStatusHeader = "X-Holidays-Status"

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service defines the interface for working date computations.
type Service interface {
	NextWorkingDate(ctx context.Context, req workingdate.Request) (*workingdate.Result, error)
}

// Handler wires the calculation endpoint to the working date service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the calculation endpoint on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/calculate", h.HandleCalculate)
}

// HandleCalculate handles GET /calculate requests.
func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req := CalculateRequestFromQuery(r.URL.Query())
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(ctx, "invalid calculate request",
			"request_id", requestID,
			"days", req.Days,
			"hours", req.Hours,
			"date", req.Date,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	result, err := h.service.NextWorkingDate(ctx, req.ToServiceRequest())
	if err != nil {
		h.logger.ErrorContext(ctx, "working date computation failed",
			"request_id", requestID,
			"days", req.Days,
			"hours", req.Hours,
			"date", req.Date,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "working date computed",
		"request_id", requestID,
		"days", req.Days,
		"hours", req.Hours,
		"date", req.Date,
		"result", result.Formatted(),
		"holiday_status", result.HolidayStatus,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	w.Header().Set(HolidaysStatusHeader, string(result.HolidayStatus))
	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}
