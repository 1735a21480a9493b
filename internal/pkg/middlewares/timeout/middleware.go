package timeout

import (
	"context"
	"net/http"
	"time"
)

// Middleware ограничивает запрос по времени. Нулевой timeout отключает ограничение,
// тогда работает только дедлайн ongoingCtx.
func Middleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// r.Context() наследуется от ongoingCtx через BaseContext
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
