// Package requesttime captures one "now" per request so the anchor instant of a
// computation and every log line of the request agree.
package requesttime

import (
	"net/http"
	"time"

	"workdays/pkg/requestcontext"
)

// Middleware captures the current time at the start of the request
// and stores it in the context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
