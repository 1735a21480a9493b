package notification

import (
	"context"
	"sync"
	"time"

	"bookstore/internal/entities"
	"bookstore/pkg/logger"
)

// AsyncNotifier - передача заказа на рассылку через ограниченную очередь в памяти.
// HTTP ответ не ждет каналов. Переполнение очереди не теряет заказ насовсем:
// его подберет фоновая задача redelivery.
type AsyncNotifier struct {
	log       serviceLogger
	processor Processor
	queue     chan int64
	timeout   time.Duration

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewAsyncNotifier запускает workers воркеров. timeout ограничивает обработку одного заказа.
func NewAsyncNotifier(log serviceLogger, processor Processor, queueSize, workers int, timeout time.Duration) *AsyncNotifier {
	n := &AsyncNotifier{
		log:       log.With(logger.NewField("component", "async_notifier")),
		processor: processor,
		queue:     make(chan int64, queueSize),
		timeout:   timeout,
	}

	for range workers {
		n.wg.Add(1)
		go func() {
			defer n.wg.Done()
			n.run()
		}()
	}

	return n
}

// Notify не блокируется. ctx запроса намеренно не используется воркерами:
// он отменяется сразу после ответа.
func (n *AsyncNotifier) Notify(_ context.Context, order *entities.Order) error {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if n.closed {
		return ErrNotifierClosed
	}

	select {
	case n.queue <- order.ID:
		return nil
	default:
		NotifyQueueDropsTotal.Inc()
		return ErrQueueFull
	}
}

// Close перестает принимать заказы и дожидается обработки уже поставленных в очередь.
func (n *AsyncNotifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	close(n.queue)
	n.mu.Unlock()

	n.wg.Wait()
}

func (n *AsyncNotifier) run() {
	for orderID := range n.queue {
		n.process(orderID)
	}
}

func (n *AsyncNotifier) process(orderID int64) {
	ctx := context.Background()
	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			n.log.Error("notification processing panic",
				logger.NewField("order_id", orderID),
				logger.NewField("recover", r),
			)
		}
	}()

	if _, err := n.processor.ProcessOrder(ctx, orderID); err != nil {
		n.log.Error("notification processing failed",
			logger.NewField("order_id", orderID),
			logger.NewField("error", err),
		)
	}
}
