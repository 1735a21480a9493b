package bookcache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var CacheRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "book_cache_requests_total",
		Help: "Total number of book cache lookups by result",
	},
	[]string{"result"},
)
