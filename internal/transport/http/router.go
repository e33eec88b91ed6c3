package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	dErrors "workdays/pkg/domain-errors"
	"workdays/pkg/platform/httputil"
	"workdays/pkg/platform/middleware/metadata"
	"workdays/pkg/platform/middleware/requestid"
	"workdays/pkg/platform/middleware/requesttime"
)

// Banner is served on GET / so a bare request shows the service is up.
const Banner = "Working days API is running. Use GET /calculate?days=&hours=&date="

// Registrar mounts a feature's endpoints.
type Registrar interface {
	Register(r chi.Router)
}

// HealthCheck reports a dependency failure; nil means healthy.
type HealthCheck func(ctx context.Context) error

// Config holds the router's collaborators. Gatherer, Health and
// RouteMiddleware are optional; RouteMiddleware applies to Routes only.
type Config struct {
	Logger          *slog.Logger
	Gatherer        prometheus.Gatherer
	Health          map[string]HealthCheck
	Routes          []Registrar
	RouteMiddleware []func(http.Handler) http.Handler
}

// NewRouter wires the shared middleware chain, the platform endpoints and
// every feature's routes. Unknown paths and verbs get the JSON error envelope.
func NewRouter(cfg Config) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(metadata.AccessLog(cfg.Logger))
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeMethodNotAllowed, r.Method+" is not allowed on "+r.URL.Path))
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(Banner))
	})
	r.Get("/health", healthHandler(cfg.Health))
	if cfg.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Group(func(r chi.Router) {
		r.Use(cfg.RouteMiddleware...)
		for _, route := range cfg.Routes {
			route.Register(r)
		}
	})
	return r
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func healthHandler(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{Status: "ok"}
		status := http.StatusOK
		for name, check := range checks {
			if resp.Checks == nil {
				resp.Checks = make(map[string]string, len(checks))
			}
			if err := check(ctx); err != nil {
				resp.Checks[name] = err.Error()
				resp.Status = "unavailable"
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[name] = "ok"
		}
		httputil.WriteJSON(w, status, resp)
	}
}
