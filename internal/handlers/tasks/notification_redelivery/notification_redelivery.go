package notification_redelivery

import (
	"context"
	"time"
)

type Service interface {
	Redeliver(ctx context.Context) error
}

type NotificationRedelivery struct {
	service  Service
	interval time.Duration
}

func NewNotificationRedelivery(service Service, interval time.Duration) *NotificationRedelivery {
	return &NotificationRedelivery{
		service:  service,
		interval: interval,
	}
}

// TTL возвращает интервал между проходами.
func (n *NotificationRedelivery) TTL() time.Duration {
	return n.interval
}

// Do повторяет упавшие каналы и доставляет заказы, оставшиеся без уведомлений.
// Проход не должен пересекаться со следующим, поэтому ограничен интервалом.
func (n *NotificationRedelivery) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, n.interval)
	defer cancel()

	return n.service.Redeliver(ctxWithTimeout)
}

func (n *NotificationRedelivery) Info() string {
	return "notification redelivery"
}
