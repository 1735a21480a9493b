package graceful_shutdown

import (
	"context"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"
)

// shutdownBody совпадает по форме с dto.ErrorResponse.
const shutdownBody = `{"error":"service is shutting down"}`

// Middleware отклоняет новые запросы после того, как ongoingCtx отменен во время остановки.
// retryAfter подсказывает клиенту, когда повторить оформление заказа на другом инстансе.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context, retryAfter time.Duration) func(http.Handler) http.Handler {
	retryAfterHeader := strconv.Itoa(int(retryAfter.Seconds()))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ongoingCtx.Err() == nil || !isShuttingDown.Load() {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Connection", "close")
			if retryAfter > 0 {
				w.Header().Set("Retry-After", retryAfterHeader)
			}
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(shutdownBody))
		})
	}
}
