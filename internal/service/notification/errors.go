package notification

import (
	"errors"
	"fmt"

	"bookstore/internal/entities"
)

var (
	ErrChannelPanic   = errors.New("channel panicked")
	ErrQueueFull      = errors.New("notification queue is full")
	ErrNotifierClosed = errors.New("notifier is closed")
)

// ChannelError - отказ одного канала после всех попыток.
type ChannelError struct {
	Channel  entities.Channel
	OrderID  int64
	Attempts int
	Err      error
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("channel %s failed for order %d after %d attempt(s): %v", e.Channel, e.OrderID, e.Attempts, e.Err)
}

func (e *ChannelError) Unwrap() error {
	return e.Err
}
