package order_events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"bookstore/internal/dto"
	"bookstore/internal/entities"
)

// Publisher передает заказ на рассылку через kafka: вместо очереди в памяти
// событие order.created читает отдельный воркер.
type Publisher struct {
	producer producer
	topic    string
	now      func() time.Time
}

func New(producer producer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
		now:      time.Now,
	}
}

func (p *Publisher) Notify(ctx context.Context, order *entities.Order) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("publish order.created: %w", err)
	}

	event := dto.OrderCreatedEvent{
		EventID:    uuid.NewString(),
		OrderID:    order.ID,
		OccurredAt: p.now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order.created: %w", err)
	}

	// ключ - id заказа: все события одного заказа в одной партиции
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(order.ID, 10)),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_id"), Value: []byte(event.EventID)},
		},
	}

	start := time.Now()
	_, _, err = p.producer.SendMessage(msg)
	result := "ok"
	if err != nil {
		result = "error"
	}
	PublishDuration.WithLabelValues(p.topic, result).Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("publish order.created for order %d: %w", order.ID, err)
	}

	return nil
}
