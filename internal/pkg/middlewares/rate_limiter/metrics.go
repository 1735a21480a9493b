package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RateLimitExceededTotal считает отклоненные запросы по шаблону роута,
// всплеск на /book/{id}/buy обычно означает повторные отправки формы.
var RateLimitExceededTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "bookstore",
		Subsystem: "http",
		Name:      "rate_limited_requests_total",
		Help:      "Requests rejected by the token bucket limiter",
	},
	[]string{"method", "route"},
)
