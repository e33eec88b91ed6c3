package ratelimit

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	dErrors "workdays/pkg/domain-errors"
	"workdays/pkg/platform/httputil"
	"workdays/pkg/platform/middleware/metadata"
	"workdays/pkg/requestcontext"
)

// Middleware rejects requests over the per-IP limit with 429 and the JSON
// error envelope. A nil limiter disables throttling.
func Middleware(limiter *Limiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := metadata.ClientIP(r)
			res := limiter.Allow(ip)

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))

			if !res.Allowed {
				retryAfter := int(math.Ceil(res.RetryAfter.Seconds()))
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				logger.WarnContext(r.Context(), "rate limit exceeded",
					"request_id", requestcontext.RequestID(r.Context()),
					"client_ip", ip,
					"retry_after_s", retryAfter,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeRateLimited,
					"too many requests from this address, retry in "+strconv.Itoa(retryAfter)+"s"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
