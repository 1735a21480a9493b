package email

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var GatewayRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "email_gateway_request_duration_seconds",
		Help:    "Duration of SMTP deliveries",
		Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
	},
	[]string{"service", "result"},
)
