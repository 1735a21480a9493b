package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChannelDeliveriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_channel_deliveries_total",
			Help: "Total number of notification deliveries by channel and outcome",
		},
		[]string{"channel", "status"},
	)

	ChannelRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_channel_retries_total",
			Help: "Total number of notification channel retry attempts",
		},
		[]string{"channel"},
	)

	ChannelDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "notification_channel_duration_seconds",
			Help:    "Duration of notification delivery including retries",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"channel", "status"},
	)

	NotifyQueueDropsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "notification_queue_drops_total",
			Help: "Total number of orders not enqueued because the notification queue was full",
		},
	)
)
