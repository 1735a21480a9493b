package rate_limiter

import "golang.org/x/time/rate"

// NewLimiter - token bucket: qps токенов в секунду, не больше burst в запасе.
func NewLimiter(qps, burst int) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(qps), burst)
}
