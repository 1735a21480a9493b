package dto

import "time"

// OrderCreatedEvent - сообщение топика order.created.
type OrderCreatedEvent struct {
	EventID    string    `json:"event_id"`
	OrderID    int64     `json:"order_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
